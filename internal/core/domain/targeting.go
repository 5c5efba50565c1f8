package domain

// Targeting describes who should see a campaign. Zero values are
// filled in by Normalize with the Marketing API defaults.
type Targeting struct {
	AgeMin    int
	AgeMax    int
	Genders   []int
	Countries []string
	Interests []string
	Platforms []string
}
