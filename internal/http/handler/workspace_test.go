package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"emcee.events/emcee/internal/http/handler"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		router *gin.Engine
		svc    *mockWorkspaceService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockWorkspaceService{}
		h := handler.NewWorkspaceHandler(svc)
		router.POST("/workspaces", withUser(&model.User{ID: 10}), h.Create)
		router.GET("/workspaces", withUser(&model.User{ID: 10}), h.List)
		router.GET("/workspaces/:workspaceID", h.Get)
		router.PATCH("/workspaces/:workspaceID", h.Update)
		router.DELETE("/workspaces/:workspaceID", h.Delete)
	})

	It("returns 201 when workspace is created", func() {
		svc.createFn = func(_ context.Context, name string, _, _ *string, userID int64) (*model.Workspace, error) {
			return &model.Workspace{ID: 1, Name: name, Slug: "launch-night", CreatedBy: userID, Status: model.WorkspaceStatusActive}, nil
		}

		body, _ := json.Marshal(map[string]interface{}{"name": "Launch Night"})
		req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["slug"]).To(Equal("launch-night"))
		Expect(resp["created_by"]).To(Equal("10"))
	})

	It("returns 400 when name is missing", func() {
		req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists the caller's workspaces", func() {
		svc.listForUserFn = func(_ context.Context, userID int64) ([]model.Workspace, error) {
			Expect(userID).To(Equal(int64(10)))
			return []model.Workspace{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["workspaces"]).To(HaveLen(2))
	})

	It("returns 404 when workspace does not exist", func() {
		svc.getFn = func(_ context.Context, _ int64) (*model.Workspace, error) {
			return nil, service.ErrWorkspaceNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/workspaces/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 on a non-numeric workspace id", func() {
		req := httptest.NewRequest(http.MethodGet, "/workspaces/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("updates the workspace name", func() {
		svc.updateFn = func(_ context.Context, workspaceID int64, name, _, _ *string) (*model.Workspace, error) {
			Expect(workspaceID).To(Equal(int64(7)))
			return &model.Workspace{ID: 7, Name: *name}, nil
		}

		body, _ := json.Marshal(map[string]interface{}{"name": "Renamed"})
		req := httptest.NewRequest(http.MethodPatch, "/workspaces/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["name"]).To(Equal("Renamed"))
	})

	It("returns 500 on service error", func() {
		svc.deleteFn = func(_ context.Context, _ int64) error {
			return errors.New("db down")
		}

		req := httptest.NewRequest(http.MethodDelete, "/workspaces/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
