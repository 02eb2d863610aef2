package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/dto"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_CreateContact(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerAndLogin(t, "username")

	w := env.doJSON(t, http.MethodPost, "/contacts/", token, map[string]string{
		"name":     "John Doe",
		"email":    "john@example.com",
		"phone":    "+49123456789",
		"initials": "JD",
		"color":    "#FF7A00",
	})
	requireStatus(t, w, http.StatusCreated)

	var contact dto.ContactDTO
	decodeJSON(t, w, &contact)
	require.NotZero(t, contact.ID)
	require.Equal(t, "John Doe", contact.Name)
	require.Equal(t, "john@example.com", contact.Email)

	// The contact lands in the caller's address book.
	var stored models.Contact
	require.NoError(t, env.db.First(&stored, contact.ID).Error)
	require.Equal(t, user.ID, stored.UserID)
}

func TestContactHandler_CreateContact_MissingFields(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerAndLogin(t, "username")

	w := env.doJSON(t, http.MethodPost, "/contacts/", token, map[string]string{
		"phone": "+49123456789",
	})
	requireStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Details map[string]string `json:"details"`
	}
	decodeJSON(t, w, &resp)
	require.Contains(t, resp.Details, "name")
	require.Contains(t, resp.Details, "email")
}

func TestContactHandler_UpdateContact(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerAndLogin(t, "username")

	contact := &models.Contact{UserID: user.ID, Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, env.db.Create(contact).Error)

	w := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/contacts/%d/", contact.ID), token,
		map[string]string{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"phone":    "+49987654321",
			"initials": "JD",
			"color":    "#FF7A00",
		})
	requireStatus(t, w, http.StatusOK)

	var updated dto.ContactDTO
	decodeJSON(t, w, &updated)
	require.Equal(t, "Jane Doe", updated.Name)
	require.Equal(t, "jane@example.com", updated.Email)
	require.Equal(t, "+49987654321", updated.Phone)

	// Ownership is untouched by updates.
	var stored models.Contact
	require.NoError(t, env.db.First(&stored, contact.ID).Error)
	require.Equal(t, user.ID, stored.UserID)
}

func TestContactHandler_UpdateContact_RejectsPartialPayload(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerAndLogin(t, "username")

	contact := &models.Contact{
		UserID: user.ID, Name: "John Doe", Email: "john@example.com",
		Phone: "+49123456789", Initials: "JD", Color: "#FF7A00",
	}
	require.NoError(t, env.db.Create(contact).Error)

	// Writes replace the whole contact, so omitting fields is a 400
	// rather than a silent wipe.
	w := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/contacts/%d/", contact.ID), token,
		map[string]string{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		})
	requireStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Details map[string]string `json:"details"`
	}
	decodeJSON(t, w, &resp)
	require.Contains(t, resp.Details, "phone")
	require.Contains(t, resp.Details, "initials")
	require.Contains(t, resp.Details, "color")

	var stored models.Contact
	require.NoError(t, env.db.First(&stored, contact.ID).Error)
	require.Equal(t, "John Doe", stored.Name)
	require.Equal(t, "+49123456789", stored.Phone)
}

func TestContactHandler_UpdateContact_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.registerAndLogin(t, "username")

	w := env.doJSON(t, http.MethodPatch, "/contacts/999/", token, map[string]string{
		"name":     "Ghost",
		"email":    "ghost@example.com",
		"phone":    "+49111111111",
		"initials": "GH",
		"color":    "#CCCCCC",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestContactHandler_DeleteContact(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.registerAndLogin(t, "username")

	contact := &models.Contact{UserID: user.ID, Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, env.db.Create(contact).Error)

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/contacts/%d/", contact.ID), token, nil)
	requireStatus(t, w, http.StatusOK)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	require.Equal(t, "Contact deleted successfully", resp["message"])

	var count int64
	env.db.Model(&models.Contact{}).Count(&count)
	require.EqualValues(t, 0, count)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/contacts/%d/", contact.ID), token, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestContactHandler_RequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/contacts/", "", map[string]string{
		"name":  "John Doe",
		"email": "john@example.com",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}
