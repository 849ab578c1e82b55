package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stackup-cli/stackup/catalog"
)

func TestSelectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     *Selection
		wantErr bool
	}{
		{
			name: "fullstack with both branches",
			sel: &Selection{
				ProjectType: catalog.Fullstack,
				Frontend:    &FrontendSelection{Framework: catalog.React},
				Backend:     &BackendSelection{Framework: catalog.Express},
			},
		},
		{
			name: "frontend-only without frontend",
			sel: &Selection{
				ProjectType: catalog.FrontendOnly,
			},
			wantErr: true,
		},
		{
			name: "backend-only with stray frontend",
			sel: &Selection{
				ProjectType: catalog.BackendOnly,
				Frontend:    &FrontendSelection{Framework: catalog.React},
				Backend:     &BackendSelection{Framework: catalog.Express},
			},
			wantErr: true,
		},
		{
			name: "use an ORM without naming one",
			sel: &Selection{
				ProjectType: catalog.BackendOnly,
				Backend:     &BackendSelection{Framework: catalog.Express, Database: catalog.UseORM},
			},
			wantErr: true,
		},
		{
			name: "ORM with a direct database",
			sel: &Selection{
				ProjectType: catalog.BackendOnly,
				Backend:     &BackendSelection{Framework: catalog.Express, Database: catalog.Postgres, ORM: catalog.Prisma},
			},
			wantErr: true,
		},
		{
			name: "ORM-backed backend",
			sel: &Selection{
				ProjectType: catalog.BackendOnly,
				Backend:     &BackendSelection{Framework: catalog.ExpressTS, Database: catalog.UseORM, ORM: catalog.Drizzle},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultSelectionIsValid(t *testing.T) {
	assert.NoError(t, DefaultSelection().Validate())
}
