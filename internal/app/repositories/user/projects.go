package user

import (
	"encoding/json"
	"fmt"

	"github.com/arda/gradlink/internal/app/models"
)

// marshalProjects encodes a project list for the JSONB profile column.
// An empty list is stored as '[]' so reads never see NULL.
func marshalProjects(projects []models.Project) ([]byte, error) {
	if projects == nil {
		projects = []models.Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return nil, fmt.Errorf("failed to encode projects: %w", err)
	}
	return data, nil
}

// unmarshalProjects decodes the JSONB profile column.
func unmarshalProjects(data []byte) ([]models.Project, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var projects []models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}
