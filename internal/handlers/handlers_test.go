package handlers_test

import (
	"MyStorage/database"
	"MyStorage/internal/handlers"
	"MyStorage/internal/repository"
	"MyStorage/internal/routers"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	app    *fiber.App
	tokens *handlers.TokenIssuer
	now    time.Time
}

func setupBackend(t *testing.T) *backend {
	db, err := database.SetupDemoDatabase()
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { database.CloseDatabase(db, log) })

	b := &backend{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	b.tokens = handlers.NewTokenIssuer([]byte("test-secret"), time.Hour, func() time.Time { return b.now })
	accounts := repository.NewAccountRepository(db)
	boxes := repository.NewBoxRepository(db)
	items := repository.NewItemRepository(db)

	uploadDir := t.TempDir()
	b.app = fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routers.SetupRoutes(b.app, routers.Handlers{
		Auth:        handlers.NewAuthHandler(accounts, b.tokens, log),
		Box:         handlers.NewBoxHandler(boxes, items, accounts, log),
		Item:        handlers.NewItemHandler(items, boxes),
		Upload:      handlers.NewUploadHandler(uploadDir, 1024, log),
		RequireAuth: handlers.RequireAuth(b.tokens, accounts),
	}, uploadDir)
	return b
}

func (b *backend) call(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// signUp registers an account and returns its token.
func (b *backend) signUp(t *testing.T, username string) string {
	email := username + "@example.com"
	status, _ := b.call(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, status)
	status, data := b.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, status)
	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(data, &token))
	assert.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

func (b *backend) createBox(t *testing.T, token, name string) uint {
	status, data := b.call(t, http.MethodPost, "/api/boxes", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, status)
	var box struct {
		ID     uint   `json:"id"`
		QRCode string `json:"qr_code"`
	}
	require.NoError(t, json.Unmarshal(data, &box))
	assert.Len(t, box.QRCode, 8)
	return box.ID
}

func detailOf(t *testing.T, data []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Detail
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	b := setupBackend(t)
	token := b.signUp(t, "alice")

	status, data := b.call(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(data, &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestAuth_Failures(t *testing.T) {
	b := setupBackend(t)
	b.signUp(t, "alice")

	status, data := b.call(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice", "email": "other@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", detailOf(t, data))

	status, data = b.call(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Incorrect email or password", detailOf(t, data))

	status, _ = b.call(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "bob", "email": "not-an-email", "password": "x",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestRequireAuth(t *testing.T) {
	b := setupBackend(t)
	token := b.signUp(t, "alice")

	status, data := b.call(t, http.MethodGet, "/api/boxes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authenticated", detailOf(t, data))

	status, _ = b.call(t, http.MethodGet, "/api/boxes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	b.now = b.now.Add(2 * time.Hour)
	status, _ = b.call(t, http.MethodGet, "/api/boxes", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestBoxes_CreateListUpdateDelete(t *testing.T) {
	b := setupBackend(t)
	token := b.signUp(t, "alice")
	id := b.createBox(t, token, "Garage")

	status, data := b.call(t, http.MethodGet, "/api/boxes", token, nil)
	require.Equal(t, http.StatusOK, status)
	var boxes []struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Shared      bool   `json:"is_shared"`
	}
	require.NoError(t, json.Unmarshal(data, &boxes))
	require.Len(t, boxes, 1)
	assert.Equal(t, "Garage", boxes[0].Name)
	assert.Equal(t, "", boxes[0].Description)
	assert.False(t, boxes[0].Shared)

	status, data = b.call(t, http.MethodPut, fmt.Sprintf("/api/boxes/%d", id), token, map[string]string{"location": "Outside"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(data), `"location":"Outside"`)
	assert.Contains(t, string(data), `"name":"Garage"`)

	status, _ = b.call(t, http.MethodPut, fmt.Sprintf("/api/boxes/%d", id), token, map[string]string{"name": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = b.call(t, http.MethodDelete, fmt.Sprintf("/api/boxes/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, data = b.call(t, http.MethodGet, fmt.Sprintf("/api/boxes/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Box not found", detailOf(t, data))
}

func TestBoxes_ShareFlow(t *testing.T) {
	b := setupBackend(t)
	alice := b.signUp(t, "alice")
	bob := b.signUp(t, "bob")
	id := b.createBox(t, alice, "Camping")
	path := fmt.Sprintf("/api/boxes/%d", id)

	status, _ := b.call(t, http.MethodGet, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, data := b.call(t, http.MethodPost, path+"/share", alice, map[string]string{"user_email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", detailOf(t, data))

	status, _ = b.call(t, http.MethodPost, path+"/share", alice, map[string]string{"user_email": "bob@example.com"})
	require.Equal(t, http.StatusOK, status)
	status, data = b.call(t, http.MethodPost, path+"/share", alice, map[string]string{"user_email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Already shared", detailOf(t, data))

	status, data = b.call(t, http.MethodGet, "/api/boxes", bob, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(data), `"is_shared":true`)

	status, _ = b.call(t, http.MethodPost, "/api/items", bob, map[string]interface{}{
		"name": "Tent", "category": "Sports", "box_id": id,
	})
	assert.Equal(t, http.StatusCreated, status)

	status, _ = b.call(t, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)

	var me struct {
		ID uint `json:"id"`
	}
	_, data = b.call(t, http.MethodGet, "/api/auth/me", bob, nil)
	require.NoError(t, json.Unmarshal(data, &me))
	status, _ = b.call(t, http.MethodDelete, fmt.Sprintf("%s/share/%d", path, me.ID), alice, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = b.call(t, http.MethodGet, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = b.call(t, http.MethodGet, fmt.Sprintf("/api/items?box_id=%d", id), bob, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestItems_ListScopedToAccessibleBoxes(t *testing.T) {
	b := setupBackend(t)
	alice := b.signUp(t, "alice")
	bob := b.signUp(t, "bob")
	aliceBox := b.createBox(t, alice, "Kitchen")
	bobBox := b.createBox(t, bob, "Books")

	for _, item := range []map[string]interface{}{
		{"name": "Mug", "category": "kitchenware", "box_id": aliceBox},
		{"name": "Shirt", "category": "clothing", "box_id": aliceBox},
	} {
		status, _ := b.call(t, http.MethodPost, "/api/items", alice, item)
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ := b.call(t, http.MethodPost, "/api/items", bob, map[string]interface{}{
		"name": "Novel", "category": "books", "box_id": bobBox,
	})
	require.Equal(t, http.StatusCreated, status)

	status, data := b.call(t, http.MethodGet, "/api/items", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var items []struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Mug", items[0].Name)

	status, data = b.call(t, http.MethodGet, fmt.Sprintf("/api/items?box_id=%d", aliceBox), alice, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(data, &items))
	assert.Len(t, items, 2)

	status, data = b.call(t, http.MethodPut, fmt.Sprintf("/api/items/%d", items[0].ID), alice, map[string]string{"category": "Decor"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(data), `"category":"decor"`)

	status, _ = b.call(t, http.MethodPut, fmt.Sprintf("/api/items/%d", items[0].ID), bob, map[string]string{"name": "Cup"})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = b.call(t, http.MethodPost, "/api/items", alice, map[string]interface{}{
		"name": "Chair", "category": "furniture", "box_id": aliceBox,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = b.call(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", items[0].ID), alice, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = b.call(t, http.MethodDelete, fmt.Sprintf("/api/items/%d", items[0].ID), alice, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func multipartImage(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x89}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func (b *backend) upload(t *testing.T, token, contentType string, size int) (int, []byte) {
	body, formType := multipartImage(t, contentType, size)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", formType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := b.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestUpload_StoresAndServesImage(t *testing.T) {
	b := setupBackend(t)
	token := b.signUp(t, "alice")

	status, data := b.upload(t, token, "image/png", 64)
	require.Equal(t, http.StatusOK, status)
	var result struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Regexp(t, `^/uploads/[0-9a-f-]{36}\.png$`, result.URL)

	resp, err := b.app.Test(httptest.NewRequest(http.MethodGet, result.URL, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpload_Rejections(t *testing.T) {
	b := setupBackend(t)
	token := b.signUp(t, "alice")

	status, data := b.upload(t, token, "text/plain", 10)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Only images allowed", detailOf(t, data))

	status, _ = b.upload(t, token, "image/png", 2048)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)

	status, _ = b.upload(t, "", "image/png", 10)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	now := func() time.Time { return time.Now() }
	token, err := handlers.NewTokenIssuer([]byte("one"), time.Hour, now).Issue(7)
	require.NoError(t, err)

	id, err := handlers.NewTokenIssuer([]byte("one"), time.Hour, now).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = handlers.NewTokenIssuer([]byte("two"), time.Hour, now).Parse(token)
	assert.ErrorIs(t, err, handlers.ErrInvalidToken)
}
