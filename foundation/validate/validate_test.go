package validate_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/validate"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

type submit struct {
	From   string `json:"from"`
	To     string `json:"to" validate:"required"`
	Amount int64  `json:"amount"`
}

func TestCheck(t *testing.T) {
	t.Log("Given the need to validate request models.")
	{
		t.Logf("\tTest 0:\tWhen handling a model with a missing required field.")
		{
			err := validate.Check(submit{From: "A", Amount: 10})
			if err == nil {
				t.Fatalf("\t%s\tShould get an error.", failed)
			}
			t.Logf("\t%s\tShould get an error.", success)

			if !validate.IsFieldErrors(err) {
				t.Fatalf("\t%s\tShould get field errors: %T", failed, err)
			}
			t.Logf("\t%s\tShould get field errors.", success)

			fields := validate.GetFieldErrors(err).Fields()
			if _, exists := fields["to"]; !exists {
				t.Fatalf("\t%s\tShould report the json field name \"to\": %v", failed, fields)
			}
			t.Logf("\t%s\tShould report the json field name \"to\".", success)
		}

		t.Logf("\tTest 1:\tWhen handling a valid model.")
		{
			if err := validate.Check(submit{To: "B", Amount: 10}); err != nil {
				t.Fatalf("\t%s\tShould validate the model: %v", failed, err)
			}
			t.Logf("\t%s\tShould validate the model.", success)
		}
	}
}
