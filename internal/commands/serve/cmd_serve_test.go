package serve

import (
	"github.com/stretchr/testify/require"
	"net"
	"net/http"
	"testing"
)

func Test_StartupShutdown(t *testing.T) {
	cmd := NewCommand()
	cmd.Listen = []string{"127.0.0.1:0", "127.0.0.1:0"}

	require.NoError(t, cmd.Startup())
	require.Len(t, cmd.servers, 2)

	for _, srv := range cmd.servers {
		resp, err := http.Get(srv.String() + "/info")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	require.NoError(t, cmd.Shutdown())
	require.Empty(t, cmd.servers)
}

func Test_StartupBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cmd := NewCommand()
	cmd.Listen = []string{"127.0.0.1:0", ln.Addr().String()}

	err = cmd.Startup()
	require.Error(t, err)
	require.Contains(t, err.Error(), ln.Addr().String())
	require.Empty(t, cmd.servers)
}

func Test_StartupInvalidCodec(t *testing.T) {
	cmd := NewCommand()
	cmd.Listen = []string{"127.0.0.1:0"}
	cmd.Codec.PreEncoder = "Base1000"

	require.Error(t, cmd.Startup())
	require.Empty(t, cmd.servers)
}

func Test_StartupNoAddress(t *testing.T) {
	cmd := NewCommand()
	require.Error(t, cmd.Startup())
}
