package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type pinBody struct {
	PIN string `json:"pin" binding:"required,min=4"`
}

func bind(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req pinBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
	} else {
		NoContent(c)
	}
	c.Writer.WriteHeaderNow()
	return w
}

func TestBindError(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      int
		wantField string
	}{
		{name: "missing field", body: `{}`, want: http.StatusUnprocessableEntity, wantField: "PIN"},
		{name: "too short", body: `{"pin":"12"}`, want: http.StatusUnprocessableEntity, wantField: "PIN"},
		{name: "malformed json", body: `{"pin":`, want: http.StatusBadRequest},
		{name: "valid", body: `{"pin":"1234"}`, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := bind(t, tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d (%s)", tt.want, w.Code, w.Body.String())
			}
			if tt.wantField == "" {
				return
			}

			var resp struct {
				Errors []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(resp.Errors) != 1 || resp.Errors[0].Field != tt.wantField {
				t.Errorf("expected one error on %s, got %+v", tt.wantField, resp.Errors)
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Attachment(c, "allOrders-2024-06-10.csv", "text/csv", []byte("id\n"))

	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="allOrders-2024-06-10.csv"` {
		t.Errorf("unexpected disposition %q", got)
	}
	if w.Body.String() != "id\n" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}
