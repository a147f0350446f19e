package playground

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/benz9527/xlist/lib/infra"
)

type Kind string

const (
	KindSingly Kind = "singly"
	KindDoubly Kind = "doubly"
	KindArena  Kind = "arena"
)

func ParseKind(kind string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(kind))); k {
	case KindSingly, KindDoubly, KindArena:
		return k, nil
	default:
	}
	return "", infra.NewErrorStack(fmt.Sprintf("[playground] unknown list kind %q", kind))
}

type OpName string

const (
	OpPush      OpName = "push"
	OpPop       OpName = "pop"
	OpPeek      OpName = "peek"
	OpPushBack  OpName = "push_back"
	OpPushFront OpName = "push_front"
	OpPopBack   OpName = "pop_back"
	OpPopFront  OpName = "pop_front"
	OpFront     OpName = "front"
	OpBack      OpName = "back"
	OpLen       OpName = "len"
	OpDrain     OpName = "drain"
	OpDrainBack OpName = "drain_back"
)

var (
	stackOps = []OpName{OpPush, OpPop, OpPeek, OpLen, OpDrain}
	dequeOps = []OpName{OpPushBack, OpPushFront, OpPopBack, OpPopFront, OpFront, OpBack, OpLen, OpDrain, OpDrainBack}
	pushOps  = []OpName{OpPush, OpPushBack, OpPushFront}
)

func (k Kind) ops() []OpName {
	if k == KindSingly {
		return stackOps
	}
	return dequeOps
}

// Op is a single parsed script token, i.e. "push_back:3" or "pop_front".
type Op struct {
	Name  OpName
	Value string
}

func (op Op) String() string {
	if len(op.Value) == 0 {
		return string(op.Name)
	}
	return string(op.Name) + ":" + op.Value
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// Parse splits the script by comma, semicolon or spaces.
// All malformed ops are reported together.
func Parse(kind Kind, script string) ([]Op, error) {
	kind, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	var (
		merr    error
		allowed = kind.ops()
		tokens  = strings.FieldsFunc(script, isSeparator)
	)
	ops := lo.Map(tokens, func(tok string, idx int) Op {
		name, value, hasValue := strings.Cut(tok, ":")
		op := Op{Name: OpName(strings.ToLower(name)), Value: value}
		switch isPush := lo.Contains(pushOps, op.Name); {
		case !lo.Contains(allowed, op.Name):
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("op #%d %q is not supported by %s list", idx, tok, kind)))
		case isPush && len(value) == 0:
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("op #%d %q requires a value", idx, tok)))
		case !isPush && hasValue:
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("op #%d %q does not take a value", idx, tok)))
		default:
		}
		return op
	})
	if merr != nil {
		return nil, infra.WrapErrorStackWithMessage(merr, "[playground] invalid script")
	}
	return ops, nil
}
