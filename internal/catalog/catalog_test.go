package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDefault_LoadsBundledCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 10)

	tomato, ok := cat.Get("tomato")
	require.True(t, ok)
	assert.Equal(t, "Tomato", tomato.Name)
	assert.Equal(t, domain.CategoryVegetable, tomato.Category)
	require.NotNil(t, tomato.Timing.IndoorStartWeeksBeforeFrost)
	assert.Equal(t, 6, *tomato.Timing.IndoorStartWeeksBeforeFrost)
	assert.Contains(t, tomato.Companions, "basil")
}

func TestDefault_KeepsExplicitZeroOffsets(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	dill, ok := cat.Get("dill")
	require.True(t, ok)
	require.NotNil(t, dill.Timing.DirectSowWeeksAfterFrost)
	assert.Equal(t, 0, *dill.Timing.DirectSowWeeksAfterFrost)
	assert.Nil(t, dill.Timing.DirectSowWeeksBeforeFrost)
}

func TestCatalog_FindAndList(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	c, ok := cat.Find("Sweet Corn")
	require.True(t, ok)
	assert.Equal(t, "corn", c.ID)

	_, ok = cat.Find("dragonfruit")
	assert.False(t, ok)

	herbs := cat.List(domain.CategoryHerb)
	require.NotEmpty(t, herbs)
	for _, h := range herbs {
		assert.Equal(t, domain.CategoryHerb, h.Category)
	}

	all := cat.List("")
	assert.Len(t, all, cat.Len())
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name)
	}
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"crops":[{"id":"kale","name":"Kale","category":"Vegetable",
		"days_to_maturity":55,"frost_tolerance":"hardy","transplant_weeks":0}]}`)
	file, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, file.Crops, 1)
	require.NotNil(t, file.Crops[0].TransplantWeeks)
	assert.Equal(t, 0, *file.Crops[0].TransplantWeeks)
	assert.Nil(t, file.Crops[0].IndoorStartWeeks)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"crops": [`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("crops: [\n  - id: x\n bad"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{}`), Format("xml"))
	assert.Error(t, err)
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crops.yml")
	content := "crops:\n  - id: kale\n    name: Kale\n    category: Vegetable\n    days_to_maturity: 55\n    frost_tolerance: hardy\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = LoadFile(filepath.Join(dir, "crops.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog extension")

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	file := &CatalogFile{Crops: []CropImport{
		{ID: "a", Name: "A", Category: "Vegetable", FrostTolerance: "hardy"},
		{ID: "a", Name: "", Category: "Mushroom", FrostTolerance: "icy", DaysToMaturity: -1},
		{Name: "NoID", Category: "Herb", FrostTolerance: "hardy",
			IndoorStartWeeks: intPtr(-2), SuccessionPlantingWeeks: intPtr(0)},
	}}

	errs := Validate(file)
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, "crops[a]: duplicate id")
	assert.Contains(t, msgs, "crops[a].name is required")
	assert.Contains(t, msgs, `crops[a].category: invalid value "Mushroom"`)
	assert.Contains(t, msgs, `crops[a].frost_tolerance: invalid value "icy"`)
	assert.Contains(t, msgs, "crops[a].days_to_maturity must be >= 0")
	assert.Contains(t, msgs, "crops[2].id is required")
	assert.Contains(t, msgs, "crops[2].indoor_start_weeks must be >= 0")
	assert.Contains(t, msgs, "crops[2].succession_planting_weeks must be > 0")
}

func TestValidate_EmptyCatalog(t *testing.T) {
	errs := Validate(&CatalogFile{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no crops")
}

func TestConvert_RejectsInvalid(t *testing.T) {
	_, err := Convert(&CatalogFile{Crops: []CropImport{{ID: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestConvert_CopiesOptionalFields(t *testing.T) {
	weeks := 3
	file := &CatalogFile{Crops: []CropImport{{
		ID: "Kale", Name: "Kale", Category: "Vegetable", FrostTolerance: "hardy",
		DaysToMaturity: 55, DirectSowWeeksBeforeFrost: &weeks,
	}}}
	crops, err := Convert(file)
	require.NoError(t, err)
	require.Len(t, crops, 1)
	assert.Equal(t, "kale", crops[0].ID)

	weeks = 9
	assert.Equal(t, 3, *crops[0].Timing.DirectSowWeeksBeforeFrost, "converted crop must not alias the import")
}
