package dto

import "time"

// CreateContainerRequest body para POST /api/containers.
type CreateContainerRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateContainerRequest body para PUT /api/containers/:id (patch parcial).
type UpdateContainerRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ContainerResponse representación de un contenedor en respuestas.
type ContainerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContainerListResponse respuesta de GET /api/containers.
type ContainerListResponse struct {
	Items []ContainerResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
