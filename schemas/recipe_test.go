package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeUnmarshal_DefaultsForMissingFields(t *testing.T) {
	raw := `{
		"ingredients": {"available": ["egg"], "needed": []},
		"instructions": [{"description": "Crack the egg"}]
	}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "Unnamed Recipe", r.Name)
	assert.Equal(t, 1, r.Servings)
	require.Len(t, r.Instructions, 1)
	assert.Equal(t, "1", r.Instructions[0].Step)
	assert.Equal(t, "Crack the egg", r.Instructions[0].Description)
}

func TestInstructionUnmarshal_Defaults(t *testing.T) {
	var i Instruction
	require.NoError(t, json.Unmarshal([]byte(`{}`), &i))
	assert.Equal(t, "1", i.Step)
	assert.Equal(t, "No description provided.", i.Description)

	// numeric step numbers are coerced to strings
	require.NoError(t, json.Unmarshal([]byte(`{"step": 3, "description": "Stir"}`), &i))
	assert.Equal(t, "3", i.Step)
}

func TestRecipeUnmarshal_ServingsAsString(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Fried Rice", "servings": "3"}`), &r))
	assert.Equal(t, 3, r.Servings)
}

func TestRecipeUnmarshal_PreservesUnknownFields(t *testing.T) {
	raw := `{
		"name": "Tomato Soup",
		"servings": 2,
		"difficulty": "easy",
		"chef_notes": {"tip": "use ripe tomatoes"}
	}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	require.Contains(t, r.Extra, "difficulty")
	require.Contains(t, r.Extra, "chef_notes")

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var round map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &round))
	assert.JSONEq(t, `"easy"`, string(round["difficulty"]))
	assert.JSONEq(t, `{"tip": "use ripe tomatoes"}`, string(round["chef_notes"]))
	assert.JSONEq(t, `"Tomato Soup"`, string(round["name"]))
}

func TestRecipeUnmarshal_WrongTypedOptionalKeepsDefault(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"name": 12345, "servings": "many"}`), &r))
	assert.Equal(t, "Unnamed Recipe", r.Name)
	assert.Equal(t, 1, r.Servings)
}

func TestRecipeResponse_TwoRecipes(t *testing.T) {
	raw := `{"recipes": [
		{"name": "Egg Fried Rice", "instructions": [{"description": "Cook rice"}]},
		{"name": "Omelette", "instructions": [{"step": "1", "description": "Beat eggs"}]}
	]}`

	var resp RecipeResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Recipes, 2)
	for _, r := range resp.Recipes {
		assert.NotEmpty(t, r.Name)
		for _, inst := range r.Instructions {
			assert.NotEmpty(t, inst.Step)
		}
	}
}

func TestRecipeMarshal_EmptyCollectionsNotNull(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Plain"}`), &r))

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"instructions":[]`)
	assert.Contains(t, string(out), `"nutrition":{}`)
}
