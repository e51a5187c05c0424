package ollama

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain runs goleak verification for all tests in the package, catching
// pollers or HTTP transports left behind by the client and launcher.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// Idle keep-alive connections from the shared HTTP transport
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}
