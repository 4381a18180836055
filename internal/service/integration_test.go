package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/common/secret"
	"emcee.events/emcee/core/config"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
	"emcee.events/emcee/internal/store"
)

var _ = Describe("IntegrationService", func() {
	var (
		mockIntegrations *mockIntegrationStore
		sealer           *secret.Sealer
		ctx              context.Context
	)

	configured := func() config.StorageConfig {
		return config.StorageConfig{
			Provider:     "dropbox",
			ClientID:     "client-123",
			ClientSecret: "hush",
			AuthURL:      "https://provider.example/oauth/authorize",
			TokenURL:     "https://provider.example/oauth/token",
			RedirectURI:  "https://emcee.events/integrations/callback",
			Scopes:       "files.write, account.read",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		mockIntegrations = &mockIntegrationStore{}
		var err error
		sealer, err = secret.New([]byte("0123456789abcdef0123456789abcdef"))
		Expect(err).NotTo(HaveOccurred())
		Expect(id.Init(1)).To(Succeed())
	})

	It("refuses to build an auth URL without provider credentials", func() {
		svc := service.NewIntegrationService(mockIntegrations, sealer, config.StorageConfig{})
		_, err := svc.BuildAuthURL("state-1")
		Expect(err).To(MatchError(service.ErrStorageNotConfigured))
	})

	It("builds an offline-access auth URL carrying the state", func() {
		svc := service.NewIntegrationService(mockIntegrations, sealer, configured())

		authURL, err := svc.BuildAuthURL("state-1")
		Expect(err).NotTo(HaveOccurred())

		parsed, err := url.Parse(authURL)
		Expect(err).NotTo(HaveOccurred())
		query := parsed.Query()
		Expect(query.Get("client_id")).To(Equal("client-123"))
		Expect(query.Get("state")).To(Equal("state-1"))
		Expect(query.Get("access_type")).To(Equal("offline"))
		Expect(query.Get("redirect_uri")).To(Equal("https://emcee.events/integrations/callback"))
		Expect(query.Get("scope")).To(Equal("files.write account.read"))
	})

	It("exchanges the code and stores sealed tokens", func() {
		var grantType, code string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			grantType = r.FormValue("grant_type")
			code = r.FormValue("code")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token":"at-123","refresh_token":"rt-456","token_type":"bearer","expires_in":3600}`)
		}))
		defer server.Close()

		cfg := configured()
		cfg.TokenURL = server.URL + "/oauth/token"
		svc := service.NewIntegrationService(mockIntegrations, sealer, cfg)

		integration, err := svc.HandleCallback(ctx, 7, "auth-code-1", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(grantType).To(Equal("authorization_code"))
		Expect(code).To(Equal("auth-code-1"))
		Expect(integration.Status).To(Equal(model.IntegrationStatusConnected))
		Expect(integration.Provider).To(Equal("dropbox"))
		Expect(integration.TokenExpiresAt).NotTo(BeNil())
		Expect(mockIntegrations.upsertCalls).To(Equal(1))

		// Tokens never land in the store as plaintext.
		Expect(integration.SealedAccessToken).NotTo(Equal("at-123"))
		Expect(sealer.Open(integration.SealedAccessToken)).To(Equal("at-123"))
		Expect(integration.SealedRefreshToken).NotTo(BeNil())
		Expect(sealer.Open(*integration.SealedRefreshToken)).To(Equal("rt-456"))
	})

	It("maps a rejected code to an invalid-code error", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
		}))
		defer server.Close()

		cfg := configured()
		cfg.TokenURL = server.URL + "/oauth/token"
		svc := service.NewIntegrationService(mockIntegrations, sealer, cfg)

		_, err := svc.HandleCallback(ctx, 7, "bad-code", 10)
		Expect(err).To(MatchError(service.ErrInvalidCode))
		Expect(mockIntegrations.upsertCalls).To(BeZero())
	})

	It("reports a missing integration", func() {
		mockIntegrations.getByWorkspaceFn = func(_ context.Context, _ int64) (*model.StorageIntegration, error) {
			return nil, store.ErrNotFound
		}

		svc := service.NewIntegrationService(mockIntegrations, sealer, configured())
		_, err := svc.Get(ctx, 7)
		Expect(err).To(MatchError(service.ErrIntegrationNotFound))
	})

	It("disconnects without a revoke endpoint", func() {
		mockIntegrations.getByWorkspaceFn = func(_ context.Context, workspaceID int64) (*model.StorageIntegration, error) {
			return &model.StorageIntegration{WorkspaceID: workspaceID, Status: model.IntegrationStatusConnected}, nil
		}

		cfg := configured()
		cfg.RevokeURL = ""
		svc := service.NewIntegrationService(mockIntegrations, sealer, cfg)

		Expect(svc.Disconnect(ctx, 7)).To(Succeed())
		Expect(mockIntegrations.deleteCalls).To(Equal(1))
	})

	It("skips revocation for an already-revoked integration", func() {
		revokeHits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			revokeHits++
		}))
		defer server.Close()

		mockIntegrations.getByWorkspaceFn = func(_ context.Context, workspaceID int64) (*model.StorageIntegration, error) {
			return &model.StorageIntegration{WorkspaceID: workspaceID, Status: model.IntegrationStatusRevoked}, nil
		}

		cfg := configured()
		cfg.RevokeURL = server.URL + "/oauth/revoke"
		svc := service.NewIntegrationService(mockIntegrations, sealer, cfg)

		Expect(svc.Disconnect(ctx, 7)).To(Succeed())
		Expect(revokeHits).To(BeZero())
		Expect(mockIntegrations.deleteCalls).To(Equal(1))
	})

	It("revokes the unsealed token before deleting the connection", func() {
		var revokedToken string
		var authUser, authPass string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			revokedToken = r.FormValue("token")
			authUser, authPass, _ = r.BasicAuth()
		}))
		defer server.Close()

		sealedAccess, err := sealer.Seal("at-plain")
		Expect(err).NotTo(HaveOccurred())
		expiry := time.Now().Add(time.Hour).UTC()

		mockIntegrations.getByWorkspaceFn = func(_ context.Context, workspaceID int64) (*model.StorageIntegration, error) {
			return &model.StorageIntegration{
				WorkspaceID:       workspaceID,
				Status:            model.IntegrationStatusConnected,
				SealedAccessToken: sealedAccess,
				TokenExpiresAt:    &expiry,
			}, nil
		}

		cfg := configured()
		cfg.RevokeURL = server.URL + "/oauth/revoke"
		svc := service.NewIntegrationService(mockIntegrations, sealer, cfg)

		Expect(svc.Disconnect(ctx, 7)).To(Succeed())
		Expect(revokedToken).To(Equal("at-plain"))
		Expect(authUser).To(Equal("client-123"))
		Expect(authPass).To(Equal("hush"))
		Expect(mockIntegrations.deleteCalls).To(Equal(1))
	})
})
