package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/internal/door/store/drivers/sqlite"
	"github.com/aussiebroadwan/vcdoor/pkg/cryptox"
	"github.com/aussiebroadwan/vcdoor/pkg/mailx"
	"github.com/aussiebroadwan/vcdoor/pkg/vcshare"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "door-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// outbox records mail instead of sending it.
type outbox struct {
	mu   sync.Mutex
	sent []mailx.Message
	err  error
}

func (o *outbox) Send(_ context.Context, m mailx.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, m)
	return nil
}

var codeRE = regexp.MustCompile(`\b\d{5}\b`)

func (o *outbox) lastCode(t *testing.T) string {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.sent)
	code := codeRE.FindString(o.sent[len(o.sent)-1].Body)
	require.NotEmpty(t, code)
	return code
}

type env struct {
	store   *sqlite.Store
	codec   *vcshare.Codec
	metrics *metrics.Metrics
	mail    *outbox

	keys  *service.KeyService
	doors *service.DoorService
	users *service.UserService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "door.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec := vcshare.New(vcshare.DefaultLength)
	m := metrics.New()
	mail := &outbox{}

	return &env{
		store:   st,
		codec:   codec,
		metrics: m,
		mail:    mail,
		keys:    &service.KeyService{Store: st, Codec: codec, Metrics: m},
		doors:   &service.DoorService{Store: st, Codec: codec, Metrics: m},
		users:   &service.UserService{Store: st, Codec: codec, Mail: mail},
	}
}

func (e *env) user(t *testing.T, name string) domain.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), domain.Registration{
		UserName: name,
		Email:    name + "@example.test",
		Password: "pw-" + name,
	})
	require.NoError(t, err)
	return u
}

func (e *env) door(t *testing.T, name string) domain.Door {
	t.Helper()
	d, err := e.doors.Create(context.Background(), name)
	require.NoError(t, err)
	return d
}

var errBoom = errors.New("boom")
