package schemas

import "encoding/json"

// The generative provider promises the recipe JSON contract described in
// the prompt, but its output is not trusted to match it. Recipe and
// Instruction therefore decode leniently: missing optional fields are
// filled with defaults, wrong-typed optional fields keep their defaults,
// and unknown fields are preserved so they survive a reshape round trip.

type RecipeIngredients struct {
	Available []string `json:"available"`
	Needed    []string `json:"needed"`
}

type Instruction struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

func (i *Instruction) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	i.Step = flexString(fields["step"], "1")
	i.Description = flexString(fields["description"], "No description provided.")
	return nil
}

type Recipe struct {
	Name         string            `json:"name"`
	Ingredients  RecipeIngredients `json:"ingredients"`
	Instructions []Instruction     `json:"instructions"`
	PrepTime     string            `json:"prep_time"`
	CookTime     string            `json:"cook_time"`
	TotalTime    string            `json:"total_time"`
	Servings     int               `json:"servings"`
	Nutrition    map[string]string `json:"nutrition"`

	// Extra holds provider fields outside the known schema.
	Extra map[string]json.RawMessage `json:"-"`
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		switch key {
		case "name":
			_ = json.Unmarshal(raw, &r.Name)
		case "ingredients":
			_ = json.Unmarshal(raw, &r.Ingredients)
		case "instructions":
			_ = json.Unmarshal(raw, &r.Instructions)
		case "prep_time":
			r.PrepTime = flexString(raw, "")
		case "cook_time":
			r.CookTime = flexString(raw, "")
		case "total_time":
			r.TotalTime = flexString(raw, "")
		case "servings":
			r.Servings = flexInt(raw)
		case "nutrition":
			_ = json.Unmarshal(raw, &r.Nutrition)
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]json.RawMessage)
			}
			r.Extra[key] = raw
		}
	}

	if r.Name == "" {
		r.Name = "Unnamed Recipe"
	}
	if r.Servings <= 0 {
		r.Servings = 1
	}
	return nil
}

func (r Recipe) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Extra)+8)
	for k, v := range r.Extra {
		out[k] = v
	}

	instructions := r.Instructions
	if instructions == nil {
		instructions = []Instruction{}
	}
	nutrition := r.Nutrition
	if nutrition == nil {
		nutrition = map[string]string{}
	}

	out["name"] = r.Name
	out["ingredients"] = r.Ingredients
	out["instructions"] = instructions
	out["prep_time"] = r.PrepTime
	out["cook_time"] = r.CookTime
	out["total_time"] = r.TotalTime
	out["servings"] = r.Servings
	out["nutrition"] = nutrition

	return json.Marshal(out)
}

type RecipeResponse struct {
	Recipes []Recipe `json:"recipes"`
}

type YouTubeVideo struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
}

type YouTubeResponse struct {
	Videos []YouTubeVideo `json:"videos"`
}

type SavedRecipeCreate struct {
	Name          string            `json:"name" binding:"required"`
	Ingredients   RecipeIngredients `json:"ingredients"`
	Instructions  []Instruction     `json:"instructions"`
	PrepTime      string            `json:"prep_time"`
	CookTime      string            `json:"cook_time"`
	TotalTime     string            `json:"total_time"`
	Servings      int               `json:"servings"`
	Nutrition     map[string]string `json:"nutrition"`
	YouTubeVideos []YouTubeVideo    `json:"youtube_videos"`
}

type SavedRecipeOut struct {
	ID            uint              `json:"id"`
	UserID        uint              `json:"user_id"`
	Name          string            `json:"name"`
	Ingredients   RecipeIngredients `json:"ingredients"`
	Instructions  []Instruction     `json:"instructions"`
	PrepTime      string            `json:"prep_time"`
	CookTime      string            `json:"cook_time"`
	TotalTime     string            `json:"total_time"`
	Servings      int               `json:"servings"`
	Nutrition     map[string]string `json:"nutrition"`
	YouTubeVideos []YouTubeVideo    `json:"youtube_videos"`
}

// flexString decodes a value that should be a string but may arrive as a
// number. Missing or unusable values yield the fallback.
func flexString(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return fallback
		}
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return fallback
}

// flexInt decodes an integer that may arrive as a JSON string. Unusable
// values yield zero, which callers replace with their default.
func flexInt(raw json.RawMessage) int {
	var i int
	if err := json.Unmarshal(raw, &i); err == nil {
		return i
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var n json.Number = json.Number(s)
		if v, err := n.Int64(); err == nil {
			return int(v)
		}
	}
	return 0
}
