package response

import (
	"encoding/json"
	"net/http"

	"gymroom/shared/constant"
	"gymroom/shared/failure"
	"gymroom/shared/logger"
	"gymroom/shared/view"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// View is a screen response: the data to render plus the notifications and
// navigation the screen produced.
type View[T any] struct {
	Data          *T                  `json:"data,omitempty"`
	Error         *string             `json:"error,omitempty"`
	Kind          failure.Kind        `json:"kind,omitempty"`
	Notifications []view.Notification `json:"notifications"`
	Navigate      string              `json:"navigate,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithView sends a screen response. A nil err answers with code, otherwise
// the failure's own code is used. A navigation also sets the Location header.
func WithView[T any](writer http.ResponseWriter, code int, data *T, err error, collector *view.Collector) {
	payload := View[T]{
		Data:          data,
		Notifications: collector.Notifications(),
		Navigate:      collector.Destination(),
	}

	if err != nil {
		code = failure.GetCode(err)
		errMsg := err.Error()
		payload.Error = &errMsg
		payload.Kind = failure.KindOf(err)
	}

	if payload.Navigate != constant.Empty {
		writer.Header().Set(constant.RequestHeaderLocation, payload.Navigate)
	}

	response(writer, code, payload)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithHealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusOK, constant.ResponseMessageHealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
