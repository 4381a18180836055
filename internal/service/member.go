package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/internal/model"
	"emcee.events/emcee/internal/store"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrAlreadyMember  = errors.New("user is already a member of this workspace")
	ErrInvalidRole    = errors.New("invalid role")
	ErrLastOwner      = errors.New("workspace must keep at least one owner")
)

type MemberService interface {
	List(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error)
	Add(ctx context.Context, workspaceID int64, email string, role model.Role, addedBy int64) (*model.WorkspaceMember, error)
	UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error)
	Remove(ctx context.Context, workspaceID, userID int64) error
	GetMembership(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error)
}

type memberService struct {
	memberStore store.MemberStore
	userStore   store.UserStore
}

func NewMemberService(memberStore store.MemberStore, userStore store.UserStore) MemberService {
	return &memberService{
		memberStore: memberStore,
		userStore:   userStore,
	}
}

func (s *memberService) List(ctx context.Context, workspaceID int64) ([]model.WorkspaceMember, error) {
	return s.memberStore.ListByWorkspace(ctx, workspaceID)
}

func (s *memberService) Add(ctx context.Context, workspaceID int64, email string, role model.Role, addedBy int64) (*model.WorkspaceMember, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if _, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking membership: %w", err)
	}

	member := &model.WorkspaceMember{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		AddedBy:     &addedBy,
	}

	if err := s.memberStore.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("creating membership: %w", err)
	}

	slog.InfoContext(ctx, "member added",
		"workspace_id", workspaceID,
		"user_id", user.ID,
		"role", role,
		"added_by", addedBy,
	)

	return member, nil
}

func (s *memberService) UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.WorkspaceMember, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}

	if member.Role == model.RoleOwner && role != model.RoleOwner {
		if err := s.requireAnotherOwner(ctx, workspaceID); err != nil {
			return nil, err
		}
	}

	updated, err := s.memberStore.UpdateRole(ctx, workspaceID, userID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("updating role: %w", err)
	}

	slog.InfoContext(ctx, "member role updated",
		"workspace_id", workspaceID,
		"user_id", userID,
		"role", role,
	)

	return updated, nil
}

func (s *memberService) Remove(ctx context.Context, workspaceID, userID int64) error {
	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("getting member: %w", err)
	}

	if member.Role == model.RoleOwner {
		if err := s.requireAnotherOwner(ctx, workspaceID); err != nil {
			return err
		}
	}

	if err := s.memberStore.Delete(ctx, workspaceID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("removing member: %w", err)
	}

	slog.InfoContext(ctx, "member removed",
		"workspace_id", workspaceID,
		"user_id", userID,
	)

	return nil
}

func (s *memberService) GetMembership(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceMember, error) {
	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting membership: %w", err)
	}
	return member, nil
}

func (s *memberService) requireAnotherOwner(ctx context.Context, workspaceID int64) error {
	owners, err := s.memberStore.CountByRole(ctx, workspaceID, model.RoleOwner)
	if err != nil {
		return fmt.Errorf("counting owners: %w", err)
	}
	if owners <= 1 {
		return ErrLastOwner
	}
	return nil
}
