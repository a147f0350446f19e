package playground

import (
	"context"
	"strconv"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/lib/xlog"
)

// Step is the outcome of one op. Present is false when a pop or a peek
// found the list empty.
type Step struct {
	Op      Op
	Value   string
	Present bool
	Len     int64
}

func (s Step) String() string {
	value := s.Value
	if !s.Present {
		value = "none"
	}
	return s.Op.String() + " -> " + value + " (len " + strconv.FormatInt(s.Len, 10) + ")"
}

// Runner replays ops on the list it owns. It is not thread safe.
type Runner struct {
	kind   Kind
	logger xlog.XLogger
	stack  list.Stack[string]
	deque  list.Deque[string]
}

func NewRunner(kind Kind, logger xlog.XLogger) (*Runner, error) {
	if logger == nil {
		return nil, infra.NewErrorStack("[playground] nil logger")
	}
	kind, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}
	r := &Runner{
		kind:   kind,
		logger: logger,
	}
	switch kind {
	case KindSingly:
		r.stack = list.NewSinglyLinkedList[string]()
	case KindDoubly:
		r.deque = list.NewDoublyLinkedList[string]()
	default:
		r.deque = list.NewArenaDeque[string](0)
	}
	return r, nil
}

func (r *Runner) Kind() Kind {
	return r.kind
}

func (r *Runner) Len() int64 {
	if r.stack != nil {
		return r.stack.Len()
	}
	return r.deque.Len()
}

// Reset drops everything the previous runs left behind.
func (r *Runner) Reset() {
	if r.stack != nil {
		r.stack.Clear()
		return
	}
	r.deque.Clear()
}

// Run applies ops in order and stops once ctx is done.
// The steps applied so far are returned either way.
func (r *Runner) Run(ctx context.Context, ops []Op) ([]Step, error) {
	steps := make([]Step, 0, len(ops))
	for i, op := range ops {
		select {
		case <-ctx.Done():
			err := infra.WrapErrorStackWithMessage(ctx.Err(), "[playground] run cancelled at op #"+strconv.Itoa(i))
			r.logger.ErrorStack(err, "run cancelled", zap.String("kind", string(r.kind)))
			return steps, err
		default:
		}

		if !lo.Contains(r.kind.ops(), op.Name) {
			return steps, infra.NewErrorStack("[playground] op " + strconv.Quote(op.String()) +
				" is not supported by " + string(r.kind) + " list")
		}
		for _, step := range r.apply(op) {
			r.logger.Debug("step",
				zap.Int("idx", i),
				zap.String("kind", string(r.kind)),
				zap.Stringer("op", step.Op),
				zap.String("value", step.Value),
				zap.Bool("present", step.Present),
				zap.Int64("len", step.Len),
			)
			steps = append(steps, step)
		}
	}
	r.logger.Info("run finished",
		zap.String("kind", string(r.kind)),
		zap.Int("ops", len(ops)),
		zap.Int("steps", len(steps)),
		zap.Int64("len", r.Len()),
	)
	return steps, nil
}

func (r *Runner) step(op Op, value string, present bool) Step {
	return Step{
		Op:      op,
		Value:   value,
		Present: present,
		Len:     r.Len(),
	}
}

func (r *Runner) apply(op Op) []Step {
	switch op.Name {
	case OpPush:
		r.stack.Push(op.Value)
		return []Step{r.step(op, op.Value, true)}
	case OpPushBack:
		r.deque.PushBack(op.Value)
		return []Step{r.step(op, op.Value, true)}
	case OpPushFront:
		r.deque.PushFront(op.Value)
		return []Step{r.step(op, op.Value, true)}
	case OpPop:
		v, ok := r.stack.Pop()
		return []Step{r.step(op, v, ok)}
	case OpPopBack:
		v, ok := r.deque.PopBack()
		return []Step{r.step(op, v, ok)}
	case OpPopFront:
		v, ok := r.deque.PopFront()
		return []Step{r.step(op, v, ok)}
	case OpPeek:
		v, ok := r.stack.Peek()
		return []Step{r.step(op, v, ok)}
	case OpFront:
		v, ok := r.deque.Front()
		return []Step{r.step(op, v, ok)}
	case OpBack:
		v, ok := r.deque.Back()
		return []Step{r.step(op, v, ok)}
	case OpLen:
		return []Step{r.step(op, strconv.FormatInt(r.Len(), 10), true)}
	case OpDrain:
		if r.stack != nil {
			return r.drain(op, r.stack.Pop)
		}
		return r.drain(op, r.deque.PopFront)
	case OpDrainBack:
		return r.drain(op, r.deque.PopBack)
	default:
	}
	return nil
}

func (r *Runner) drain(op Op, pop func() (string, bool)) []Step {
	steps := make([]Step, 0, r.Len()+1)
	for v, ok := pop(); ok; v, ok = pop() {
		steps = append(steps, r.step(op, v, true))
	}
	if len(steps) == 0 {
		steps = append(steps, r.step(op, "", false))
	}
	return steps
}
