package student

import (
	"cmp"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rainkit/iterpar/errors"
)

// Student is a single student record.
type Student struct {
	ID        int    `json:"id" validate:"gte=0"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Group     string `json:"group" validate:"required"`
}

// FullName returns the first and last name separated by a space.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Group is a named group and its members.
type Group struct {
	Name     string    `json:"name"`
	Students []Student `json:"students"`
}

// CompareByID is the natural order of students.
func CompareByID(a, b Student) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareByName orders students by last name, first name, and ID.
func CompareByName(a, b Student) int {
	return cmp.Or(
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.ID, b.ID),
	)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every record against its struct tags and reports the first
// invalid one.
func Validate(students []Student) error {
	v := getValidator()
	for i := range students {
		err := v.Struct(&students[i])
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.InvalidArgument("students",
				fmt.Sprintf("record %d: %s failed %q", i, fieldErrs[0].Field(), fieldErrs[0].Tag())).
				WithDetail("index", i).
				WithCause(err)
		}
		return errors.InvalidArgument("students", fmt.Sprintf("record %d: %v", i, err)).WithCause(err)
	}
	return nil
}
