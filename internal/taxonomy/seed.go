package taxonomy

// examplePrompts holds one representative prompt stem per grid cell,
// indexed [cognitive-1][knowledge-1]. Shown in authoring UIs and used by
// the question bank to anchor generated items to the right cell.
var examplePrompts = [6][4]string{
	{ // Remember
		"List the key terms introduced in this topic.",
		"Match each term to the category it belongs to.",
		"Recall the steps of the standard procedure in order.",
		"Identify which study strategy you used for this topic.",
	},
	{ // Understand
		"Restate the definition in your own words.",
		"Explain how the two concepts relate to each other.",
		"Summarize what each step of the procedure accomplishes.",
		"Describe when this approach is a poor fit and why.",
	},
	{ // Apply
		"Use the given fact to answer a direct question.",
		"Apply the underlying principle to a new example.",
		"Carry out the procedure on an unfamiliar input.",
		"Choose and justify a strategy for an unseen problem.",
	},
	{ // Analyze
		"Separate the relevant facts from the irrelevant ones.",
		"Break the concept into its component assumptions.",
		"Find the step where the worked solution goes wrong.",
		"Examine which of your assumptions led you astray.",
	},
	{ // Evaluate
		"Judge whether the stated fact supports the claim.",
		"Critique the argument built on this concept.",
		"Assess whether the chosen procedure was the best one.",
		"Evaluate the effectiveness of your own study plan.",
	},
	{ // Create
		"Compose a new example that uses these facts correctly.",
		"Design a model that connects the concepts covered.",
		"Devise an alternative procedure for the same goal.",
		"Plan how you would teach this topic to a peer.",
	},
}
