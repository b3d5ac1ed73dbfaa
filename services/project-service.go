package services

import (
	"context"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/models"
	"github.com/google/uuid"
)

type ProjectService struct {
	projects ProjectStore
	users    UserStore
}

func NewProjectService(projects ProjectStore, users UserStore) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

type CreateProjectInput struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

// CreateProject writes the project and the owner membership together, so a
// project is never without its owner row.
func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, Validation("project name must not be empty")
	}
	if in.OwnerID == "" {
		return nil, Validation("owner_id is required")
	}

	owner, err := s.users.Get(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrNotFound
	}

	now := nowISO()
	project := &models.Project{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Key:         strings.ToUpper(strings.TrimSpace(in.Key)),
		Description: in.Description,
		OwnerID:     in.OwnerID,
		CreatedAt:   now,
	}
	membership := &models.Membership{
		ID:        models.MembershipID(project.ID, in.OwnerID),
		ProjectID: project.ID,
		UserID:    in.OwnerID,
		Role:      "owner",
		AddedAt:   now,
		AddedBy:   in.OwnerID,
	}
	if err := s.projects.InsertWithOwner(ctx, project, membership); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.Archived {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.ListAll(ctx)
}

type UpdateProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateProject is owner-only.
func (s *ProjectService) UpdateProject(ctx context.Context, viewerID, id string, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.Archived {
		return nil, ErrNotFound
	}
	if project.OwnerID != viewerID {
		return nil, ErrForbidden
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, Validation("project name must not be empty")
		}
		project.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	project.UpdatedAt = nowISO()
	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ArchiveProject soft-deletes the project record. Tasks under it stay
// visible through their own rules.
func (s *ProjectService) ArchiveProject(ctx context.Context, viewerID, id string) error {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return err
	}
	if project == nil || project.Archived {
		return ErrNotFound
	}
	if project.OwnerID != viewerID {
		return ErrForbidden
	}
	project.Archived = true
	project.UpdatedAt = nowISO()
	return s.projects.Replace(ctx, project)
}
