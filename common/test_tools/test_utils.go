package testtools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

var (
	ErrFileNameEmpty = errors.New("file name is empty")
)

const (
	jsonExt = ".json"
	testURL = "http://localhost:8080"
)

// ReadJSONFile reads a json fixture, adding the .json extension when missing.
func ReadJSONFile(path, name string) ([]byte, error) {
	if len(name) == 0 {
		return nil, ErrFileNameEmpty
	}

	if !strings.HasSuffix(name, jsonExt) {
		name += jsonExt
	}

	fname := filepath.Join(path, name)

	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s error %s", fname, err)
	}

	return buf, nil
}

// GenerateCtx returns a gin test context for a request with the given body and headers.
func GenerateCtx(t *testing.T, method, target string, body []byte, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, testURL+target, bytes.NewReader(body))

	for k, v := range headers {
		ctx.Request.Header.Set(k, v)
	}

	return ctx, recorder
}

// GenerateCtxWithJSON returns a gin test context for a POST request with a json body.
func GenerateCtxWithJSON(t *testing.T, data map[string]interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	return GenerateCtx(t, http.MethodPost, "/", jsonbytes, map[string]string{
		"Content-Type": "application/json",
	})
}

// GenerateCtxWithForm returns a gin test context for a POST request with an url encoded form body.
func GenerateCtxWithForm(t *testing.T, form string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	return GenerateCtx(t, http.MethodPost, "/", []byte(form), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
}
