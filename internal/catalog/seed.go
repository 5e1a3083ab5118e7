package catalog

// seedSubjects defines the built-in demo curriculum.
// Grades 3-5, four subjects each.
var seedSubjects = []Subject{
	{ID: "math", DisplayName: "Mathematics", Grade: 4},
	{ID: "science", DisplayName: "Science", Grade: 4},
	{ID: "english", DisplayName: "English", Grade: 4},
	{ID: "history", DisplayName: "History", Grade: 4},

	{ID: "math", DisplayName: "Mathematics", Grade: 3},
	{ID: "science", DisplayName: "Science", Grade: 3},
	{ID: "english", DisplayName: "English", Grade: 3},
	{ID: "art", DisplayName: "Art", Grade: 3},

	{ID: "math", DisplayName: "Mathematics", Grade: 5},
	{ID: "science", DisplayName: "Science", Grade: 5},
	{ID: "english", DisplayName: "English", Grade: 5},
	{ID: "history", DisplayName: "History", Grade: 5},
	{ID: "geography", DisplayName: "Geography", Grade: 5},
}

// seedTopics defines topics per (grade, subject). Estimated minutes are
// per-activity estimates used by the plan builder.
var seedTopics = map[int]map[string][]Topic{
	3: {
		"math": {
			{ID: "g3-math-add-sub", SubjectID: "math", DisplayName: "Addition & Subtraction", Difficulty: DifficultyBeginner, EstimatedMinutes: 20},
			{ID: "g3-math-mult-intro", SubjectID: "math", DisplayName: "Introduction to Multiplication", Difficulty: DifficultyBeginner, EstimatedMinutes: 25},
			{ID: "g3-math-fractions", SubjectID: "math", DisplayName: "Fractions on a Number Line", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g3-math-shapes", SubjectID: "math", DisplayName: "Shapes & Perimeter", Difficulty: DifficultyBeginner, EstimatedMinutes: 20},
		},
		"science": {
			{ID: "g3-sci-plants", SubjectID: "science", DisplayName: "Plant Life Cycles", Difficulty: DifficultyBeginner, EstimatedMinutes: 25},
			{ID: "g3-sci-weather", SubjectID: "science", DisplayName: "Weather & Climate", Difficulty: DifficultyBeginner, EstimatedMinutes: 20},
			{ID: "g3-sci-forces", SubjectID: "science", DisplayName: "Forces & Motion", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
		},
		"english": {
			{ID: "g3-eng-reading", SubjectID: "english", DisplayName: "Reading Comprehension", Difficulty: DifficultyBeginner, EstimatedMinutes: 25},
			{ID: "g3-eng-writing", SubjectID: "english", DisplayName: "Paragraph Writing", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g3-eng-grammar", SubjectID: "english", DisplayName: "Nouns & Verbs", Difficulty: DifficultyBeginner, EstimatedMinutes: 15},
		},
		"art": {
			{ID: "g3-art-color", SubjectID: "art", DisplayName: "Color Theory Basics", Difficulty: DifficultyBeginner, EstimatedMinutes: 30},
			{ID: "g3-art-drawing", SubjectID: "art", DisplayName: "Observational Drawing", Difficulty: DifficultyBeginner, EstimatedMinutes: 35},
		},
	},
	4: {
		"math": {
			{ID: "g4-math-mult-div", SubjectID: "math", DisplayName: "Multi-digit Multiplication & Division", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g4-math-fractions", SubjectID: "math", DisplayName: "Equivalent Fractions", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g4-math-decimals", SubjectID: "math", DisplayName: "Decimal Notation", Difficulty: DifficultyIntermediate, EstimatedMinutes: 25},
			{ID: "g4-math-angles", SubjectID: "math", DisplayName: "Angles & Measurement", Difficulty: DifficultyBeginner, EstimatedMinutes: 20},
			{ID: "g4-math-word-problems", SubjectID: "math", DisplayName: "Multi-step Word Problems", Difficulty: DifficultyAdvanced, EstimatedMinutes: 35},
		},
		"science": {
			{ID: "g4-sci-energy", SubjectID: "science", DisplayName: "Energy & Waves", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g4-sci-ecosystems", SubjectID: "science", DisplayName: "Ecosystems & Food Chains", Difficulty: DifficultyBeginner, EstimatedMinutes: 25},
			{ID: "g4-sci-earth", SubjectID: "science", DisplayName: "Earth's Changing Surface", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g4-sci-circuits", SubjectID: "science", DisplayName: "Simple Circuits", Difficulty: DifficultyAdvanced, EstimatedMinutes: 40},
		},
		"english": {
			{ID: "g4-eng-inference", SubjectID: "english", DisplayName: "Making Inferences", Difficulty: DifficultyIntermediate, EstimatedMinutes: 25},
			{ID: "g4-eng-essay", SubjectID: "english", DisplayName: "Opinion Essays", Difficulty: DifficultyAdvanced, EstimatedMinutes: 40},
			{ID: "g4-eng-vocab", SubjectID: "english", DisplayName: "Context Vocabulary", Difficulty: DifficultyBeginner, EstimatedMinutes: 15},
			{ID: "g4-eng-poetry", SubjectID: "english", DisplayName: "Poetry & Figurative Language", Difficulty: DifficultyIntermediate, EstimatedMinutes: 25},
		},
		"history": {
			{ID: "g4-hist-explorers", SubjectID: "history", DisplayName: "Age of Exploration", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g4-hist-local", SubjectID: "history", DisplayName: "Local & State History", Difficulty: DifficultyBeginner, EstimatedMinutes: 25},
			{ID: "g4-hist-civics", SubjectID: "history", DisplayName: "Government Basics", Difficulty: DifficultyIntermediate, EstimatedMinutes: 25},
		},
	},
	5: {
		"math": {
			{ID: "g5-math-fraction-ops", SubjectID: "math", DisplayName: "Fraction Operations", Difficulty: DifficultyAdvanced, EstimatedMinutes: 35},
			{ID: "g5-math-volume", SubjectID: "math", DisplayName: "Volume & Coordinate Planes", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-math-decimals", SubjectID: "math", DisplayName: "Decimal Arithmetic", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-math-expressions", SubjectID: "math", DisplayName: "Numerical Expressions", Difficulty: DifficultyAdvanced, EstimatedMinutes: 30},
		},
		"science": {
			{ID: "g5-sci-matter", SubjectID: "science", DisplayName: "Properties of Matter", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-sci-space", SubjectID: "science", DisplayName: "Earth & Space Systems", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-sci-method", SubjectID: "science", DisplayName: "Scientific Method Projects", Difficulty: DifficultyAdvanced, EstimatedMinutes: 45},
		},
		"english": {
			{ID: "g5-eng-themes", SubjectID: "english", DisplayName: "Theme & Summary", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-eng-research", SubjectID: "english", DisplayName: "Short Research Projects", Difficulty: DifficultyAdvanced, EstimatedMinutes: 45},
			{ID: "g5-eng-narrative", SubjectID: "english", DisplayName: "Narrative Writing", Difficulty: DifficultyIntermediate, EstimatedMinutes: 35},
		},
		"history": {
			{ID: "g5-hist-colonial", SubjectID: "history", DisplayName: "Colonial America", Difficulty: DifficultyIntermediate, EstimatedMinutes: 30},
			{ID: "g5-hist-revolution", SubjectID: "history", DisplayName: "The American Revolution", Difficulty: DifficultyAdvanced, EstimatedMinutes: 35},
		},
		"geography": {
			{ID: "g5-geo-maps", SubjectID: "geography", DisplayName: "Maps & Regions", Difficulty: DifficultyBeginner, EstimatedMinutes: 20},
			{ID: "g5-geo-climate", SubjectID: "geography", DisplayName: "Climate Zones", Difficulty: DifficultyIntermediate, EstimatedMinutes: 25},
		},
	},
}

// seedLearners defines the built-in demo learners.
var seedLearners = []Learner{
	{ID: "demo-maya", DisplayName: "Maya", Grade: 4},
	{ID: "demo-liam", DisplayName: "Liam", Grade: 3},
	{ID: "demo-sofia", DisplayName: "Sofia", Grade: 5},
	{ID: "demo-noah", DisplayName: "Noah", Grade: 4},
}

// SeedLearners returns a copy of the built-in demo learners.
func SeedLearners() []Learner {
	out := make([]Learner, len(seedLearners))
	copy(out, seedLearners)
	return out
}
