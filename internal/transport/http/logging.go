package http

import (
	"encoding/json"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/redect/members-api/internal/domain"
)

const (
	requestBodyLogKey = "http.request.body.summary"
	maxLoggedBody     = 2048
)

func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if user, ok := c.Get(contextUserKey).(*domain.User); ok && user != nil {
				userID = user.ID.String()
			}

			payload := struct {
				Time      string      `json:"time"`
				UserID    string      `json:"user_id"`
				Method    string      `json:"method"`
				URI       string      `json:"uri"`
				Status    int         `json:"status"`
				LatencyMS int64       `json:"latency_ms"`
				Body      interface{} `json:"body,omitempty"`
				Error     string      `json:"error,omitempty"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				UserID:    userID,
				Method:    v.Method,
				URI:       v.URI,
				Status:    v.Status,
				LatencyMS: v.Latency.Milliseconds(),
				Body:      c.Get(requestBodyLogKey),
			}
			if v.Error != nil {
				payload.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, _ []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
	}))
}

// sanitizeBody renders a loggable view of a request body: JSON with
// credential fields redacted, anything else clamped or dropped. Multipart
// uploads are summarized by size only.
func sanitizeBody(body []byte, contentType string) interface{} {
	if len(body) == 0 {
		return nil
	}

	lowered := strings.ToLower(strings.TrimSpace(contentType))
	if strings.HasPrefix(lowered, "multipart/form-data") {
		return map[string]interface{}{"_multipart_bytes": len(body)}
	}

	if strings.HasPrefix(lowered, "application/json") || json.Valid(body) {
		var data interface{}
		if err := json.Unmarshal(body, &data); err == nil {
			return redactJSON(data, "")
		}
	}

	if !utf8.Valid(body) {
		return "binary"
	}
	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return "redacted"
	}
	return clampString(text)
}

func redactJSON(value interface{}, keyHint string) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, val := range v {
			lowerKey := strings.ToLower(key)
			if strings.Contains(lowerKey, "password") || strings.Contains(lowerKey, "token") {
				result[key] = "redacted"
				continue
			}
			result[key] = redactJSON(val, lowerKey)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = redactJSON(item, keyHint)
		}
		return result
	case string:
		if keyHint != "" && (strings.Contains(keyHint, "password") || strings.Contains(keyHint, "token")) {
			return "redacted"
		}
		return clampString(v)
	default:
		return v
	}
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
