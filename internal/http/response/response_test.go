package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, CodeNotFound, "missing")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, CodeNotFound, body.StatusCode)
	require.Equal(t, "missing", body.Msg)
	require.Equal(t, "req-1", body.Data["request_id"])
}

func TestSuccessKeepsNullData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, nil)
	require.JSONEq(t, `{"status_code":0,"msg":"success","data":null}`, w.Body.String())
}

func TestWrapErrorKeepsCause(t *testing.T) {
	inner := http.ErrServerClosed
	err := WrapError(CodeInternal, "internal error", inner)
	require.ErrorIs(t, err, inner)
	require.Equal(t, CodeInternal, err.Code)
	require.Equal(t, "internal error: "+inner.Error(), err.Error())
	require.Equal(t, "internal error", WrapError(CodeBadRequest, "internal error", nil).Error())
}
