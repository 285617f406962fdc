package tshape

// Sample returns the built-in full stack developer model.
func Sample() Model {
	return Model{
		Role:  "Full Stack Developer",
		Level: "Senior",
		Primary: []Item{
			{Category: "Frontend", Name: "React", Required: 4, Current: 5},
			{Category: "Frontend", Name: "JavaScript", Required: 4, Current: 5},
			{Category: "Frontend", Name: "HTML/CSS", Required: 4, Current: 4},
			{Category: "Backend", Name: "Node.js", Required: 4, Current: 4},
			{Category: "Backend", Name: "Express", Required: 3, Current: 4},
		},
		Secondary: []Item{
			{Category: "Database", Name: "MongoDB", Required: 3, Current: 3},
			{Category: "Database", Name: "PostgreSQL", Required: 2, Current: 3},
			{Category: "DevOps", Name: "Docker", Required: 2, Current: 1},
			{Category: "DevOps", Name: "Kubernetes", Required: 1, Current: 1},
			{Category: "Testing", Name: "Jest", Required: 3, Current: 2},
			{Category: "Testing", Name: "Cypress", Required: 2, Current: 1},
		},
	}
}
