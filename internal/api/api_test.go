package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymdesk/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"required,oneof=monthly quarterly half-yearly annual"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Duration int      `json:"duration" binding:"required,gt=0"`
}

func newRouter(production bool, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(production))
	r.POST("/x/:id", h)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindJSONReportsEveryField(t *testing.T) {
	r := newRouter(false, func(c *gin.Context) {
		var p samplePayload
		if err := BindJSON(c, &p); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusCreated)
	})

	body := `{"type":"weekly","price":-1,"duration":0}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)

	fields := map[string]string{}
	for _, f := range resp.Errors {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "type must be one of: monthly, quarterly, half-yearly, annual", fields["type"])
	assert.Equal(t, "price must be greater than or equal to 0", fields["price"])
	assert.Contains(t, fields, "duration")
}

func TestBindJSONAcceptsZeroPrice(t *testing.T) {
	r := newRouter(false, func(c *gin.Context) {
		var p samplePayload
		if err := BindJSON(c, &p); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusCreated)
	})

	body := `{"name":"Basic","type":"monthly","price":0,"duration":1}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBindJSONMalformed(t *testing.T) {
	r := newRouter(false, func(c *gin.Context) {
		var p samplePayload
		if err := BindJSON(c, &p); err != nil {
			c.Error(err)
			return
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", bytes.NewBufferString(`{"name":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w).Message)
}

func TestErrorHandlerHidesInternalErrorsInProduction(t *testing.T) {
	handler := func(c *gin.Context) {
		c.Error(errors.New("pq: connection refused"))
	}

	w := httptest.NewRecorder()
	newRouter(true, handler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode(t, w).Message)

	w = httptest.NewRecorder()
	newRouter(false, handler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "pq: connection refused", decode(t, w).Message)
}

func TestErrorHandlerKeepsTypedStatus(t *testing.T) {
	r := newRouter(true, func(c *gin.Context) {
		c.Error(apperr.Forbidden("Unauthorized"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized", decode(t, w).Message)
}

func TestParamID(t *testing.T) {
	r := newRouter(false, func(c *gin.Context) {
		id, err := ParamID(c, "id", "gym")
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid gym ID", decode(t, w).Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestBindJSONNamesMistypedField(t *testing.T) {
	r := newRouter(false, func(c *gin.Context) {
		var p samplePayload
		if err := BindJSON(c, &p); err != nil {
			c.Error(err)
			return
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x/1",
		bytes.NewBufferString(`{"name":"Basic","type":"monthly","price":"free","duration":1}`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, apperr.Field("price", "price must be a number"), resp.Errors[0])
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		want    string
		wantErr bool
	}{
		{"calendar date", `"1990-05-01"`, true, "1990-05-01", false},
		{"rfc3339", `"1990-05-01T08:00:00+05:30"`, true, "1990-05-01", false},
		{"empty", `""`, false, "", false},
		{"null", `null`, false, "", false},
		{"slashes", `"01/05/1990"`, false, "", true},
		{"number", `19900501`, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				assert.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, d.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, d.Format(DateLayout))
				v, err := d.Value()
				require.NoError(t, err)
				assert.Equal(t, tt.want, v)
			}
		})
	}
}
