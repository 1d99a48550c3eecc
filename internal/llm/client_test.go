package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unauthorized status",
			err:  &googleapi.Error{Code: 401, Message: "Request had invalid authentication credentials"},
			want: true,
		},
		{
			name: "forbidden status",
			err:  &googleapi.Error{Code: 403, Message: "The caller does not have permission"},
			want: true,
		},
		{
			name: "wrapped forbidden status",
			err:  fmt.Errorf("generate failed: %w", &googleapi.Error{Code: 403}),
			want: true,
		},
		{
			name: "server error status",
			err:  &googleapi.Error{Code: 500, Message: "Internal error"},
			want: false,
		},
		{
			name: "invalid api key message",
			err:  errors.New("API key not valid. Please pass a valid API key."),
			want: true,
		},
		{
			name: "unauthenticated message",
			err:  errors.New("rpc error: code = Unauthenticated desc = request not authenticated"),
			want: true,
		},
		{
			name: "permission denied message",
			err:  errors.New("rpc error: code = PermissionDenied desc = permission denied"),
			want: true,
		},
		{
			name: "transient network error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthError(tt.err))
		})
	}
}
