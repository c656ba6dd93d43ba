package validator_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/reader-launcher/internal/validator"
)

type options struct {
	Host    string       `validate:"required,loopback"`
	Handler http.Handler `validate:"required"`
}

func TestValidate_TrickyNils(t *testing.T) {
	cases := []struct {
		in      options
		wantErr bool
	}{
		// Negative.
		{
			in:      options{Host: "127.0.0.1", Handler: http.HandlerFunc(nil)},
			wantErr: true,
		},
		{
			in:      options{Host: "127.0.0.1", Handler: (*handlerMock)(nil)},
			wantErr: true,
		},

		// Positive.
		{
			in:      options{Host: "127.0.0.1", Handler: new(handlerMock)},
			wantErr: false,
		},
		{
			in: options{
				Host:    "127.0.0.1",
				Handler: http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}),
			},
			wantErr: false,
		},
	}

	for _, tt := range cases {
		t.Run("", func(t *testing.T) {
			err := validator.Validator.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Loopback(t *testing.T) {
	cases := []struct {
		host    string
		wantErr bool
	}{
		{host: "127.0.0.1"},
		{host: "127.0.0.2"},
		{host: "::1"},
		{host: "0.0.0.0", wantErr: true},
		{host: "192.168.1.10", wantErr: true},
		{host: "localhost", wantErr: true},
		{host: "", wantErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.host, func(t *testing.T) {
			err := validator.Validator.Struct(options{Host: tt.host, Handler: new(handlerMock)})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

var _ http.Handler = (*handlerMock)(nil)

type handlerMock struct{}

func (h *handlerMock) ServeHTTP(_ http.ResponseWriter, _ *http.Request) {
}
