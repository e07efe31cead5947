// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gotomicro/ego/core/elog"

	"github.com/pdiddy/photopdf/internal/convert"
)

// MaxMessageLen is the longest message shown to a user as is.
const MaxMessageLen = 150

// GenericMessage replaces messages longer than MaxMessageLen.
const GenericMessage = "Could not create the PDF. Please try again."

// UserMessage turns err into a short message for display. The full error is
// always logged; messages over MaxMessageLen characters are replaced by
// GenericMessage.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	elog.DefaultLogger.Error("conversion failed", elog.FieldErr(err))

	var (
		readErr *convert.ImageReadError
		dirErr  *convert.DirectoryUnavailableError
		valErr  *convert.ValidationError
		msg     string
	)
	switch {
	case errors.Is(err, convert.ErrEmptyInput):
		msg = "Add at least one image first."
	case errors.Is(err, ErrBusy):
		msg = "Please wait for the current conversion to finish."
	case errors.As(err, &readErr):
		msg = fmt.Sprintf("Image %d could not be read: %v", readErr.Index+1, readErr.Err)
	case errors.As(err, &dirErr):
		msg = "No storage location is available for the PDF."
	case errors.As(err, &valErr):
		msg = fmt.Sprintf("Invalid %s: %v", valErr.Field, valErr.Err)
	default:
		msg = "Error: " + err.Error()
	}

	if utf8.RuneCountInString(msg) > MaxMessageLen {
		return GenericMessage
	}
	return msg
}
