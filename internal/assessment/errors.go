package assessment

import (
	"errors"
	"fmt"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

// ErrAnswerShape marks a submitted value whose shape does not match the
// question type. Recoverable: the caller rejects the value and re-asks.
var ErrAnswerShape = errors.New("answer shape does not match question type")

func errShape(q *model.Question, msg string) error {
	return fmt.Errorf("question %q: %s: %w", q.ID, msg, ErrAnswerShape)
}
