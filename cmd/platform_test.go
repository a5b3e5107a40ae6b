package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/stretchr/testify/require"
)

// fakePlatform serves the platform API over httptest and accepts channel
// writes on a plain TCP listener.
type fakePlatform struct {
	server   *httptest.Server
	listener net.Listener

	mu        sync.Mutex
	logins    []string
	received  map[string]string
	checksums map[string]string
	flagValue domain.FlagValue
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	p := &fakePlatform{
		listener:  listener,
		received:  map[string]string{},
		checksums: map[string]string{},
		flagValue: domain.FlagFinished,
	}
	go p.acceptChannels()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /authenticate/login/password/account_id", p.login("account_password"))
	mux.HandleFunc("POST /authenticate/login/key", p.login("api_key"))
	mux.HandleFunc("POST /authenticate/register/key", func(w http.ResponseWriter, _ *http.Request) {
		writeTestJSON(w, "sk-generated")
	})
	mux.HandleFunc("POST /persist/models", p.createModels)
	mux.HandleFunc("POST /persist/invocations/by_model_names", p.createInvocations)
	mux.HandleFunc("POST /persist/flags/query", p.queryFlags)
	mux.HandleFunc("POST /file_push/socket/asset", p.allocate("asset_id"))
	mux.HandleFunc("POST /file_push/socket/input", p.allocate("input_id"))
	mux.HandleFunc("POST /file_push/complete", p.complete)
	mux.HandleFunc("GET /retrieve/output/acc-1/m-1/inv-1/out-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "84")
	})
	p.server = httptest.NewServer(mux)

	t.Cleanup(func() {
		p.server.Close()
		_ = listener.Close()
	})

	return p
}

func (p *fakePlatform) URL() string {
	return p.server.URL
}

func (p *fakePlatform) acceptChannels() {
	for {
		conn, err := p.listener.Accept()
		if err != nil {
			return
		}
		go func() {
			defer conn.Close()
			reader := bufio.NewReader(conn)
			pairingID, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			body, _ := io.ReadAll(reader)

			p.mu.Lock()
			p.received[strings.TrimSpace(pairingID)] = string(body)
			p.mu.Unlock()
		}()
	}
}

func accessToken() string {
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("platform-key"))
	return token
}

func (p *fakePlatform) login(strategy string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		p.mu.Lock()
		p.logins = append(p.logins, strategy)
		p.mu.Unlock()

		writeTestJSON(w, map[string]any{
			"access_token": accessToken(),
			"account":      map[string]any{"id": "acc-1", "name": "ada"},
		})
	}
}

func (p *fakePlatform) createModels(w http.ResponseWriter, r *http.Request) {
	var models []domain.Model
	if err := json.NewDecoder(r.Body).Decode(&models); err != nil || len(models) != 1 {
		http.Error(w, "expected one model", http.StatusBadRequest)
		return
	}

	model := models[0]
	model.ID = "m-1"
	for i := range model.Assets {
		model.Assets[i].ID = "a-" + model.Assets[i].AssetName
		model.Assets[i].ModelID = model.ID
	}
	writeTestJSON(w, map[string]domain.Model{model.ID: model})
}

func (p *fakePlatform) createInvocations(w http.ResponseWriter, _ *http.Request) {
	writeTestJSON(w, []domain.Invocation{{
		ID:        "inv-1",
		AccountID: "acc-1",
		ModelID:   "m-1",
		Inputs:    []domain.InvocationSignature{{ID: "in-1", DisplayTitle: "X", AccountID: "acc-1", ModelID: "m-1", InvocationID: "inv-1"}},
		Outputs:   []domain.InvocationSignature{{ID: "out-1", DisplayTitle: "Y", AccountID: "acc-1", ModelID: "m-1", InvocationID: "inv-1"}},
	}})
}

func (p *fakePlatform) queryFlags(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Values []string `json:"values"`
	}
	_ = json.NewDecoder(r.Body).Decode(&query)

	p.mu.Lock()
	value := p.flagValue
	p.mu.Unlock()

	flags := map[string][]domain.StatusFlag{}
	for _, id := range query.Values {
		flags[id] = []domain.StatusFlag{{EntityID: id, Value: value}}
	}
	writeTestJSON(w, flags)
}

func (p *fakePlatform) allocate(idField string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		addr := p.listener.Addr().(*net.TCPAddr)
		writeTestJSON(w, map[string]any{
			"pairing_id": fmt.Sprintf("pair-%v", body[idField]),
			"host":       addr.IP.String(),
			"port":       addr.Port,
		})
	}
}

func (p *fakePlatform) complete(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	p.mu.Lock()
	p.checksums[body["pairing_id"]] = body["checksum"]
	p.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (p *fakePlatform) setFlagValue(value domain.FlagValue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flagValue = value
}

// receivedFor waits briefly for the channel reader to finish recording.
func (p *fakePlatform) receivedFor(pairingID string) string {
	deadline := time.Now().Add(2 * time.Second)
	for {
		p.mu.Lock()
		body, ok := p.received[pairingID]
		p.mu.Unlock()
		if ok || time.Now().After(deadline) {
			return body
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (p *fakePlatform) checksumFor(pairingID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.checksums[pairingID]
}

func (p *fakePlatform) loginStrategies() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.logins...)
}

func writeTestJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}
