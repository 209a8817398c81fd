package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stardodge/protocol"
	"stardodge/room"
	"stardodge/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()

	pal := filepath.Join(dir, "space.pal")
	require.NoError(t, os.WriteFile(pal, []byte("#000000\n#ffffff\n"), 0o644))
	sheet := filepath.Join(dir, "sheet.toml")
	manifest := "palette = \"space\"\n\n[sprites.ship]\nx = 0\ny = 0\nw = 16\nh = 16\n"
	require.NoError(t, os.WriteFile(sheet, []byte(manifest), 0o644))

	sm := session.NewManager(zerolog.Nop())
	t.Cleanup(sm.Close)

	rm := room.NewManager(sm, session.Options{
		TickHz:      protocol.SimTickHz,
		PalettePath: pal,
		SheetPath:   sheet,
	}, zerolog.Nop())
	t.Cleanup(rm.StopAll)

	return NewRouter(rm, zerolog.Nop())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateAndListRooms(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rooms", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Code, 6)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []room.RoomInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, created.Code, rooms[0].Code)
	assert.Equal(t, 0, rooms[0].Players)
}

func TestListRoomsEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stardodge_")
}
