package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vivero-api/internal/application/dto"
	"github.com/jhoicas/vivero-api/internal/application/usecase"
	"github.com/jhoicas/vivero-api/internal/domain"
	"github.com/jhoicas/vivero-api/internal/domain/entity"
	"github.com/jhoicas/vivero-api/internal/domain/listquery"
)

// memPlantRepo fake con estado para los casos de uso de plantas.
type memPlantRepo struct {
	byID      map[string]*entity.Plant
	listItems []*entity.Plant
	total     int64

	created      *entity.Plant
	updated      *entity.Plant
	deleteResult bool
	lastQuery    *listquery.Descriptor
}

func (m *memPlantRepo) Create(_ context.Context, p *entity.Plant) error {
	m.created = p
	return nil
}

func (m *memPlantRepo) GetByID(_ context.Context, id string) (*entity.Plant, error) {
	return m.byID[id], nil
}

func (m *memPlantRepo) Update(_ context.Context, p *entity.Plant) error {
	m.updated = p
	return nil
}

func (m *memPlantRepo) List(_ context.Context, q *listquery.Descriptor) ([]*entity.Plant, error) {
	m.lastQuery = q
	return m.listItems, nil
}

func (m *memPlantRepo) Count(_ context.Context, _ *listquery.Descriptor) (int64, error) {
	return m.total, nil
}

func (m *memPlantRepo) Delete(_ context.Context, _ string) (bool, error) {
	return m.deleteResult, nil
}

func (m *memPlantRepo) DeactivateByCategory(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func newPlantUC(repo *memPlantRepo) *usecase.PlantUseCase {
	return usecase.NewPlantUseCase(repo, testStaticBase)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPlantCreate_StatusPorDefectoEsActive(t *testing.T) {
	repo := &memPlantRepo{}

	out, err := newPlantUC(repo).Create(context.Background(), dto.CreatePlantRequest{Name: "Ficus"})
	require.NoError(t, err)

	assert.Equal(t, entity.PlantStatusActive, out.Status)
	assert.Equal(t, entity.PlantStatusActive, repo.created.Status)
}

func TestPlantCreate_StatusExplicitoSeRespeta(t *testing.T) {
	repo := &memPlantRepo{}

	out, err := newPlantUC(repo).Create(context.Background(), dto.CreatePlantRequest{
		Name:   "Ficus seco",
		Status: entity.PlantStatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlantStatusInactive, out.Status)
}

func TestPlantCreate_SinCategorias_PersisteArregloVacioNoNil(t *testing.T) {
	repo := &memPlantRepo{}

	out, err := newPlantUC(repo).Create(context.Background(), dto.CreatePlantRequest{Name: "Solitaria"})
	require.NoError(t, err)

	require.NotNil(t, repo.created.CategoryIDs, "membresías vacías se guardan como [], no null")
	assert.Empty(t, repo.created.CategoryIDs)
	assert.NotNil(t, out.CategoryIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestPlantUpdate_ReemplazaMembresiasCompletas(t *testing.T) {
	repo := &memPlantRepo{byID: map[string]*entity.Plant{
		"p1": {ID: "p1", Name: "Rosa", Status: entity.PlantStatusActive, CategoryIDs: []string{"vieja"}},
	}}

	out, err := newPlantUC(repo).Update(context.Background(), "p1", dto.UpdatePlantRequest{
		CategoryIDs: []string{"nueva-1", "nueva-2"},
	})
	require.NoError(t, err)

	// El arreglo se reemplaza entero, no se fusiona con el anterior.
	assert.Equal(t, []string{"nueva-1", "nueva-2"}, out.CategoryIDs)
	assert.Equal(t, "Rosa", out.Name, "campos no enviados no cambian")
}

func TestPlantUpdate_Inexistente_DevuelveNil(t *testing.T) {
	repo := &memPlantRepo{byID: map[string]*entity.Plant{}}

	out, err := newPlantUC(repo).Update(context.Background(), "nada", dto.UpdatePlantRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPlantDelete_Inexistente_EsNotFound(t *testing.T) {
	repo := &memPlantRepo{deleteResult: false}
	err := newPlantUC(repo).Delete(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlantDelete_Existente_SinError(t *testing.T) {
	repo := &memPlantRepo{deleteResult: true}
	assert.NoError(t, newPlantUC(repo).Delete(context.Background(), "p1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestPlantList_FiltroPorCategoriaLlegaAlDescriptor(t *testing.T) {
	repo := &memPlantRepo{}

	_, err := newPlantUC(repo).List(context.Background(), map[string]string{
		"categoryId": "22222222-2222-4222-8222-222222222222",
		"status":     "active",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery)
	assert.Equal(t, []listquery.Filter{
		{Field: "status", Value: "active"},
		{Field: "categoryId", Value: "22222222-2222-4222-8222-222222222222"},
	}, repo.lastQuery.Filters)
}

func TestPlantList_DataVaciaSerializaComoArreglo(t *testing.T) {
	repo := &memPlantRepo{listItems: nil, total: 0}

	out, err := newPlantUC(repo).List(context.Background(), map[string]string{})
	require.NoError(t, err)

	assert.NotNil(t, out.Data)
	assert.Equal(t, int64(0), out.Total)
	assert.False(t, out.HasNext)
}
