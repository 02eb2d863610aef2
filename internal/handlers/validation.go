package handlers

import (
	"errors"
	"strings"

	apierrors "github.com/BayerTobias/join-backend-pythonanywhere/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body and, on validation failure, answers with
// a 400 carrying per-field messages. Returns false when the request was
// already answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		apierrors.BadRequestWithDetails(c, "Invalid request body", details)
		return false
	}

	apierrors.BadRequest(c, "Invalid request body")
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters"
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters"
	default:
		return "This field is invalid"
	}
}
