package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jakechorley/shift-rota/internal/config"
)

const (
	AuthPort     = 3000
	authTimeout  = 5 * time.Minute
	callbackPath = "/oauth/callback"
	tokenDirName = ".shift-rota/tokens"
	tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
)

// ScopeSheets grants read access to leave tables and write access for publishing
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

// GetOAuthConfig builds the installed-app OAuth2 config, redirecting to the local callback server
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	raw, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	cfg, err := google.ConfigFromJSON(raw, ScopeSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)
	return cfg, nil
}

// GetTokenWithFlow returns a usable token for env. A stored token is reused
// (refreshing it when expired) as long as it still carries the spreadsheets
// scope; otherwise the browser flow runs and the new token is stored.
func GetTokenWithFlow(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) (*oauth2.Token, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if token := storedToken(ctx, oauthConfig, env, logger); token != nil {
		return token, nil
	}

	logger.Info("No valid token found, starting OAuth flow")
	fmt.Printf("\nVisit this URL to authorize the application:\n%s\n\n",
		oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline))

	code, err := waitForAuthCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	if err := checkTokenScopes(ctx, token); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if err := saveToken(env, token); err != nil {
		logger.Warn("Failed to save token", zap.Error(err))
	}
	return token, nil
}

// storedToken returns the token on disk if it is (or can be refreshed into) a
// valid token with the required scope. Unusable tokens are removed.
func storedToken(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) *oauth2.Token {
	token, err := loadToken(env)
	if err != nil {
		logger.Warn("Failed to load token", zap.Error(err))
		return nil
	}
	if token == nil {
		return nil
	}

	refreshed := false
	if !token.Valid() {
		if token.RefreshToken == "" {
			return nil
		}
		fresh, err := oauthConfig.TokenSource(ctx, token).Token()
		if err != nil {
			logger.Debug("Token refresh failed", zap.Error(err))
			return nil
		}
		token, refreshed = fresh, true
	}

	if err := checkTokenScopes(ctx, token); err != nil {
		logger.Warn("Stored token is missing required scopes, starting new OAuth flow", zap.Error(err))
		_ = deleteToken(env)
		return nil
	}

	if refreshed {
		logger.Debug("Token refreshed")
		if err := saveToken(env, token); err != nil {
			logger.Warn("Failed to save refreshed token", zap.Error(err))
		}
	}
	return token
}

// checkTokenScopes asks the tokeninfo endpoint which scopes the token carries
func checkTokenScopes(ctx context.Context, token *oauth2.Token) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenInfoURL+"?access_token="+token.AccessToken, nil)
	if err != nil {
		return fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tokeninfo request failed with status %d", resp.StatusCode)
	}

	var info struct {
		Scope string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if missing := missingScopes(info.Scope); len(missing) > 0 {
		return fmt.Errorf("token is missing required scopes: %v", missing)
	}
	return nil
}

// missingScopes returns the required scopes absent from a space separated grant
func missingScopes(granted string) []string {
	have := strings.Fields(granted)
	var missing []string
	for _, scope := range []string{ScopeSheets} {
		if !slices.Contains(have, scope) {
			missing = append(missing, scope)
		}
	}
	return missing
}

// waitForAuthCode serves the redirect target until a code arrives, the flow
// fails or authTimeout passes
func waitForAuthCode(ctx context.Context) (string, error) {
	codes := make(chan string, 1)
	errs := make(chan error, 2)

	mux := http.NewServeMux()
	mux.Handle(callbackPath, callbackHandler(codes, errs))
	server := &http.Server{Addr: fmt.Sprintf(":%d", AuthPort), Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("server error: %w", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	select {
	case code := <-codes:
		return code, nil
	case err := <-errs:
		return "", err
	case <-timeoutCtx.Done():
		return "", fmt.Errorf("authorization timeout after %v", authTimeout)
	}
}

func callbackHandler(codes chan<- string, errs chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			select {
			case errs <- errors.New("no authorization code received"):
			default:
			}
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Authorization successful</h1><p>You can close this window.</p></body></html>")

		select {
		case codes <- code:
		default:
		}
	}
}

// tokenPath returns the token file for env, creating the directory when create is set
func tokenPath(env string, create bool) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, tokenDirName)
	if create {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("failed to create token directory: %w", err)
		}
	}
	return filepath.Join(dir, "token-"+env+".json"), nil
}

// loadToken returns nil without error when no token has been stored for env
func loadToken(env string) (*oauth2.Token, error) {
	path, err := tokenPath(env, false)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &token, nil
}

func saveToken(env string, token *oauth2.Token) error {
	path, err := tokenPath(env, true)
	if err != nil {
		return err
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func deleteToken(env string) error {
	path, err := tokenPath(env, false)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}
