package recipes

// Recorder receives moderation events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecipeSubmitted(category Category)
	RecipeStatusChanged(from, to Status)
	RecipeDeleted()
}

type noopRecorder struct{}

func (noopRecorder) RecipeSubmitted(Category) {}

func (noopRecorder) RecipeStatusChanged(Status, Status) {}

func (noopRecorder) RecipeDeleted() {}
