/*
File    : lox-mix/interpreter/interpreter_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"io"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/object"
)

var _ ast.StmtVisitor = (*Interpreter)(nil)

// Every Visit* method below returns either nil (success), or an error
// value (RuntimeError, *ThrownValue, or a control-flow signal) that
// execute() unwraps back into a Go error. The interface{} return type
// is dictated by ast.StmtVisitor, which is shared with the resolver.

func (in *Interpreter) VisitBlock(s *ast.Block) interface{} {
	if err := in.executeBlock(s.Statements, environment.NewEnclosedBy(in.env)); err != nil {
		return err
	}
	return nil
}

func (in *Interpreter) VisitVar(s *ast.Var) interface{} {
	value := object.Value(object.NilValue)
	if s.Init != nil {
		v, err := in.evaluate(s.Init)
		if err != nil {
			return err
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitExpression(s *ast.Expression) interface{} {
	_, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	return nil
}

func (in *Interpreter) VisitPrint(s *ast.Print) interface{} {
	v, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	_, _ = io.WriteString(in.out, v.ToString()+"\n")
	return nil
}

func (in *Interpreter) VisitIf(s *ast.If) interface{} {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return in.execute(s.Then)
	} else if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhile(s *ast.While) interface{} {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			return nil
		}
		err = in.execute(s.Body)
		if err == nil {
			continue
		}
		switch err.(type) {
		case breakSignal:
			return nil
		case continueSignal:
			// A `for` loop desugars to Block[init, While[cond,
			// Block[body, increment]]]: s.Body's last statement is the
			// increment, and a continue caught here must still run it
			// before the condition is re-checked, or the loop variable
			// never advances.
			if blk, ok := s.Body.(*ast.Block); ok && len(blk.Statements) > 0 {
				last := blk.Statements[len(blk.Statements)-1]
				ierr := in.executeBlock([]ast.Stmt{last}, environment.NewEnclosedBy(in.env))
				if ierr != nil {
					switch ierr.(type) {
					case breakSignal:
						return nil
					case continueSignal:
					default:
						return ierr
					}
				}
			}
			continue
		default:
			return err
		}
	}
}

func (in *Interpreter) VisitBreak(s *ast.Break) interface{} {
	return breakSignal{}
}

func (in *Interpreter) VisitContinue(s *ast.Continue) interface{} {
	return continueSignal{}
}

func (in *Interpreter) VisitReturn(s *ast.Return) interface{} {
	value := object.Value(object.NilValue)
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return returnSignal{Value: value}
}

func (in *Interpreter) VisitThrow(s *ast.Throw) interface{} {
	v, err := in.evaluate(s.Value)
	if err != nil {
		return err
	}
	return &ThrownValue{Token: s.Keyword, Value: v}
}

// VisitTry implements the try/catch/finally unwind: `try` runs, any
// error it produces is routed into `catch`'s named binding (when a
// catch block exists), and `finally` always runs afterward regardless
// of which path was taken, with its own error (if any) taking
// precedence.
func (in *Interpreter) VisitTry(s *ast.Try) interface{} {
	tryErr := in.execute(s.TryBlock)

	var result error = tryErr
	if tryErr != nil {
		if caught, ok := asCatchable(tryErr); ok && s.CatchBlock != nil {
			catchEnv := environment.NewEnclosedBy(in.env)
			if s.ErrorName != nil {
				catchEnv.Define(s.ErrorName.Lexeme, caught)
			}
			result = in.executeBlock(s.CatchBlock.Statements, catchEnv)
		}
	}

	if s.FinallyBlock != nil {
		if finallyErr := in.execute(s.FinallyBlock); finallyErr != nil {
			return finallyErr
		}
	}
	if result != nil {
		return result
	}
	return nil
}

func (in *Interpreter) VisitFunction(s *ast.Function) interface{} {
	fn := object.NewFunction(s.Name.Lexeme, s.Params, s.Body, in.env, s.IsInitializer)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitClass(s *ast.Class) interface{} {
	var superclass *object.Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*object.Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name, "superclass must be a class")
		}
		superclass = sc
	}

	classEnv := in.env
	if s.Superclass != nil {
		classEnv = environment.NewEnclosedBy(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = object.NewFunction(m.Name.Lexeme, m.Params, m.Body, classEnv, m.IsInitializer)
	}

	class := object.NewClass(s.Name.Lexeme, superclass, methods)
	in.env.Define(s.Name.Lexeme, class)
	return nil
}
