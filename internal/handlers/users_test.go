package handlers

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"pawtrail/internal/utils"
)

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	return out
}

func TestRegisterSuccess(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	mock.
		ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "Ada", "Lovelace", "ada@example.com", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.POST("/api/user", h.Register)

	resp := postJSON(t, router, "/api/user", map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "pw",
	})
	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	if out["message"] != "User Registered Successfully." {
		t.Fatalf("unexpected message: %v", out["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	var stored string
	mock.
		ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "Ada", "Lovelace", "ada@example.com", passwordCapture{&stored}, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.POST("/api/user", h.Register)

	resp := postJSON(t, router, "/api/user", map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "pw",
	})
	expectHTTP200(t, resp.Code)

	if stored == "" || stored == "pw" {
		t.Fatalf("expected a hash to be stored, got %q", stored)
	}
	if !utils.CheckPasswordHash("pw", stored) {
		t.Fatalf("stored hash does not verify against the plaintext")
	}
}

// passwordCapture records the bound password argument for inspection.
type passwordCapture struct {
	dest *string
}

func (p passwordCapture) Match(value driver.Value) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	*p.dest = s
	return true
}

func TestRegisterValidation(t *testing.T) {
	h, _, _, cleanup := newTestHandlers(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/user", h.Register)

	cases := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			name:    "missing first name",
			body:    map[string]any{"lastName": "B", "email": "a@x.com", "password": "pw"},
			message: "Invalid or missing first name.",
		},
		{
			name:    "wrong-typed last name",
			body:    map[string]any{"firstName": "A", "lastName": 42, "email": "a@x.com", "password": "pw"},
			message: "Invalid or missing last name.",
		},
		{
			name:    "empty email",
			body:    map[string]any{"firstName": "A", "lastName": "B", "email": "", "password": "pw"},
			message: "Invalid or missing email.",
		},
		{
			name:    "missing password",
			body:    map[string]any{"firstName": "A", "lastName": "B", "email": "a@x.com"},
			message: "Invalid or missing password.",
		},
		{
			name:    "wrong-typed profile picture",
			body:    map[string]any{"firstName": "A", "lastName": "B", "email": "a@x.com", "password": "pw", "profilePicture": 7},
			message: "Invalid data types",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, router, "/api/user", tc.body)
			mustStatus(t, resp.Code, http.StatusBadRequest)
			out := decodeBody(t, resp)
			if out["message"] != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, out["message"])
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	hashed, err := utils.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "profile_picture"}).
				AddRow("u1", "A", "B", "a@x.com", hashed, nil),
		)

	router := gin.New()
	router.POST("/api/user/login", h.Login)

	resp := postJSON(t, router, "/api/user/login", map[string]any{"email": "a@x.com", "password": "pw"})
	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	if out["message"] != "Login Successfully." {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestLoginIncorrectPassword(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	hashed, err := utils.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "profile_picture"}).
				AddRow("u1", "A", "B", "a@x.com", hashed, nil),
		)

	router := gin.New()
	router.POST("/api/user/login", h.Login)

	resp := postJSON(t, router, "/api/user/login", map[string]any{"email": "a@x.com", "password": "wrong"})
	mustStatus(t, resp.Code, http.StatusForbidden)

	out := decodeBody(t, resp)
	if out["message"] != "Incorrect Password." {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "profile_picture"}))

	router := gin.New()
	router.POST("/api/user/login", h.Login)

	resp := postJSON(t, router, "/api/user/login", map[string]any{"email": "nobody@x.com", "password": "pw"})
	mustStatus(t, resp.Code, http.StatusForbidden)

	out := decodeBody(t, resp)
	if out["message"] != "Invalid Email." {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestVerifyIssuesDecodableToken(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	hashed, err := utils.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "profile_picture"}).
				AddRow("u1", "A", "B", "a@x.com", hashed, nil),
		)

	router := gin.New()
	router.POST("/api/user/verify", h.Verify)

	resp := postJSON(t, router, "/api/user/verify", map[string]any{"email": "a@x.com", "password": "pw"})
	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	tokenString, _ := out["token"].(string)
	if tokenString == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := h.tokens.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != "u1" || claims.Email != "a@x.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyIncorrectPasswordMessage(t *testing.T) {
	h, mock, _, cleanup := newTestHandlers(t)
	defer cleanup()

	hashed, err := utils.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "profile_picture"}).
				AddRow("u1", "A", "B", "a@x.com", hashed, nil),
		)

	router := gin.New()
	router.POST("/api/user/verify", h.Verify)

	resp := postJSON(t, router, "/api/user/verify", map[string]any{"email": "a@x.com", "password": "wrong"})
	mustStatus(t, resp.Code, http.StatusForbidden)

	out := decodeBody(t, resp)
	if out["message"] != "Incorrect password." {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}
