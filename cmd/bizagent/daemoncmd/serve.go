package daemoncmd

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Huzaifa-EJ/business-analyst-adk/crm"
	"github.com/Huzaifa-EJ/business-analyst-adk/internal/configutil"
	"github.com/Huzaifa-EJ/business-analyst-adk/internal/logutil"
	"github.com/Huzaifa-EJ/business-analyst-adk/internal/runtimeclock"
	"github.com/Huzaifa-EJ/business-analyst-adk/tools"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AgentRunner turns a free-form message into a reply plus the number of tool
// invocations the turn took. The HTTP surface works without one; /v1/chat then
// reports that no agent is configured.
type AgentRunner interface {
	Chat(ctx context.Context, accountID, message string) (reply string, toolCalls int, err error)
}

type ServeDependencies struct {
	// BuildRuntime opens storage and returns the tool registry plus the service
	// backing the data endpoint.
	BuildRuntime func(logger *slog.Logger) (*tools.Registry, *crm.Service, error)
	Agent        AgentRunner
}

func NewServeCmd(deps ServeDependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as a local daemon that accepts tool calls over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			bind := strings.TrimSpace(configutil.FlagOrViperString(cmd, "server-bind", "server.bind"))
			if bind == "" {
				bind = "127.0.0.1"
			}
			port := configutil.FlagOrViperInt(cmd, "server-port", "server.port")
			if port <= 0 {
				port = 8787
			}
			auth := strings.TrimSpace(configutil.FlagOrViperString(cmd, "server-auth-token", "server.auth_token"))

			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			if auth == "" {
				logger.Warn("server_auth_disabled", "hint", "set server.auth_token to require a bearer token")
			}

			reg, svc, err := deps.BuildRuntime(logger)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              bind + ":" + strconv.Itoa(port),
				Handler:           NewHandler(logger, reg, svc, deps.Agent, auth),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("server_start", "addr", srv.Addr, "tools", len(reg.All()))
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().String("server-bind", "127.0.0.1", "Bind address (default: 127.0.0.1).")
	cmd.Flags().Int("server-port", 8787, "HTTP port to listen on.")
	cmd.Flags().String("server-auth-token", "", "Bearer token required for all non-/healthz endpoints (empty disables auth).")

	return cmd
}

// NewHandler builds the HTTP surface. Split from the command so tests can hit
// it with httptest directly.
func NewHandler(logger *slog.Logger, reg *tools.Registry, svc *crm.Service, agent AgentRunner, authToken string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		meta := runtimeclock.Meta(time.Now())
		meta["ok"] = true
		writeJSON(w, http.StatusOK, meta)
	})

	mux.HandleFunc("/v1/tools", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		type preview struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		previews := []preview{}
		for _, t := range reg.All() {
			previews = append(previews, preview{Name: t.Name(), Description: t.Description()})
		}
		writeJSON(w, http.StatusOK, map[string]any{"tools": previews, "count": len(previews)})
	})

	mux.HandleFunc("/v1/tools/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		name := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/v1/tools/"))
		if name == "" {
			http.Error(w, "missing tool name", http.StatusBadRequest)
			return
		}
		var req struct {
			UserID string         `json:"user_id"`
			Params map[string]any `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		sess := tools.Session{AccountID: strings.TrimSpace(req.UserID)}
		env := reg.Dispatch(r.Context(), sess, name, req.Params)
		writeJSON(w, http.StatusOK, env)
	})

	mux.HandleFunc("/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Message string `json:"message"`
			UserID  string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			http.Error(w, "missing message", http.StatusBadRequest)
			return
		}
		if agent == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":  "error",
				"message": "chat agent is not configured; call tools directly via /v1/tools/{name}",
			})
			return
		}
		reply, toolCalls, err := agent.Chat(r.Context(), strings.TrimSpace(req.UserID), req.Message)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":     "success",
			"reply":      reply,
			"tool_calls": toolCalls,
		})
	})

	mux.HandleFunc("/v1/data", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !checkAuth(r, authToken) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			http.Error(w, "missing user_id", http.StatusBadRequest)
			return
		}
		snap, err := svc.Snapshot(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	return withRequestLog(logger, mux)
}

func withRequestLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		started := time.Now()
		next.ServeHTTP(w, r)
		if logger != nil {
			logger.Info("http_request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(started).String(),
			)
		}
	})
}

func checkAuth(r *http.Request, token string) bool {
	if strings.TrimSpace(token) == "" {
		return true
	}
	got := strings.TrimSpace(r.Header.Get("Authorization"))
	want := "Bearer " + strings.TrimSpace(token)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
