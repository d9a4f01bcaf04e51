package requests

import (
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fluent/pkg/modelstate"
)

// CreateContactRequest is the form data for creating a contact.
type CreateContactRequest struct {
	Name      string `display:"Full name" placeholder:"Jane Doe" validate:"required,minlen=2,maxlen=100"`
	Email     string `display:"E-mail" datatype:"email" validate:"required,maxlen=254"`
	Message   string `description:"What can we help with?" validate:"maxlen=2000"`
	TopicID   int    `display:"Topic" validate:"required"`
	Subscribe bool   `display:"Send me updates"`
}

// ParseContact reads the request from posted form values.
func ParseContact(form url.Values) *CreateContactRequest {
	req := &CreateContactRequest{
		Name:    strings.TrimSpace(form.Get("Name")),
		Email:   strings.ToLower(strings.TrimSpace(form.Get("Email"))),
		Message: strings.TrimSpace(form.Get("Message")),
	}
	req.TopicID, _ = strconv.Atoi(form.Get("TopicID"))
	req.Subscribe, _ = strconv.ParseBool(form.Get("Subscribe"))
	return req
}

// Validate checks the request and returns the field errors found.
func (r *CreateContactRequest) Validate() modelstate.ValidationErrors {
	var errs modelstate.ValidationErrors
	switch {
	case r.Name == "":
		errs = append(errs, modelstate.FieldError{Field: "Name", Message: "Name is required"})
	case len(r.Name) < 2:
		errs = append(errs, modelstate.FieldError{Field: "Name", Message: "Name is too short"})
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, modelstate.FieldError{Field: "Email", Message: "Enter a valid e-mail address"})
	}
	if r.TopicID == 0 {
		errs = append(errs, modelstate.FieldError{Field: "TopicID", Message: "Choose a topic"})
	}
	return errs
}
