package store

import (
	"github.com/circuitlab-dev/circuitlab/db"
	"github.com/circuitlab-dev/circuitlab/internal/models"
	"gorm.io/datatypes"
)

func defaultChallenges() []models.Challenge {
	return []models.Challenge{
		{Title: "Simple Circuit", Description: "Connect a battery and a bulb", WorkspaceType: "electric", Difficulty: 1, Requirements: datatypes.JSON(`{"bulbs": 1, "batteries": 1}`)},
		{Title: "Series Circuit", Description: "Connect 2 bulbs in series", WorkspaceType: "electric", Difficulty: 2, Requirements: datatypes.JSON(`{"bulbs": 2, "batteries": 1}`)},
		{Title: "Parallel Circuit", Description: "Connect 2 bulbs in parallel", WorkspaceType: "electric", Difficulty: 3, Requirements: datatypes.JSON(`{"bulbs": 2, "batteries": 1}`)},
		{Title: "Switch Control", Description: "Add a switch to control the bulb", WorkspaceType: "electric", Difficulty: 4, Requirements: datatypes.JSON(`{"bulbs": 1, "batteries": 1, "switches": 1}`)},
		{Title: "Resistor Network", Description: "Build a circuit with resistors", WorkspaceType: "electric", Difficulty: 5, Requirements: datatypes.JSON(`{"bulbs": 1, "batteries": 1, "resistors": 1}`)},
		{Title: "Complex Series", Description: "Multiple components in series", WorkspaceType: "electric", Difficulty: 6, Requirements: datatypes.JSON(`{"bulbs": 2, "batteries": 1, "resistors": 1}`)},
		{Title: "Mixed Circuit", Description: "Combine series and parallel", WorkspaceType: "electric", Difficulty: 7, Requirements: datatypes.JSON(`{"bulbs": 3, "batteries": 1}`)},
		{Title: "Voltage Division", Description: "Create voltage divider circuit", WorkspaceType: "electric", Difficulty: 8, Requirements: datatypes.JSON(`{"bulbs": 1, "batteries": 1, "resistors": 2}`)},
		{Title: "Bridge Circuit", Description: "Build a Wheatstone bridge", WorkspaceType: "electric", Difficulty: 9, Requirements: datatypes.JSON(`{"bulbs": 1, "batteries": 1, "resistors": 4}`)},
		{Title: "Advanced Design", Description: "Complex multi-component circuit", WorkspaceType: "electric", Difficulty: 10, Requirements: datatypes.JSON(`{"bulbs": 3, "batteries": 2, "resistors": 2, "switches": 1}`)},
		{Title: "AND Gate", Description: "Implement an AND logic gate", WorkspaceType: "logic", Difficulty: 1, Requirements: datatypes.JSON(`{"gates": ["AND"]}`)},
		{Title: "OR Gate", Description: "Implement an OR logic gate", WorkspaceType: "logic", Difficulty: 2, Requirements: datatypes.JSON(`{"gates": ["OR"]}`)},
		{Title: "NOT Gate", Description: "Implement a NOT logic gate", WorkspaceType: "logic", Difficulty: 3, Requirements: datatypes.JSON(`{"gates": ["NOT"]}`)},
		{Title: "XOR Gate", Description: "Implement an XOR logic gate", WorkspaceType: "logic", Difficulty: 4, Requirements: datatypes.JSON(`{"gates": ["XOR"]}`)},
		{Title: "Truth Table 1", Description: "Match the given truth table", WorkspaceType: "logic", Difficulty: 5, Requirements: datatypes.JSON(`{"gates": ["AND", "OR"]}`)},
		{Title: "Truth Table 2", Description: "Design circuit for complex truth table", WorkspaceType: "logic", Difficulty: 6, Requirements: datatypes.JSON(`{"gates": ["AND", "OR", "NOT"]}`)},
		{Title: "Multi-Gate", Description: "Combine multiple gate types", WorkspaceType: "logic", Difficulty: 7, Requirements: datatypes.JSON(`{"gates": ["AND", "OR", "XOR"]}`)},
		{Title: "Adder Circuit", Description: "Build a binary adder", WorkspaceType: "logic", Difficulty: 8, Requirements: datatypes.JSON(`{"gates": ["AND", "OR", "XOR"]}`)},
		{Title: "Multiplexer", Description: "Design a multiplexer circuit", WorkspaceType: "logic", Difficulty: 9, Requirements: datatypes.JSON(`{"gates": ["AND", "OR", "NOT"]}`)},
		{Title: "Advanced Logic", Description: "Complex logic design challenge", WorkspaceType: "logic", Difficulty: 10, Requirements: datatypes.JSON(`{"gates": ["AND", "OR", "NOT", "XOR", "NAND"]}`)},
	}
}

// SeedChallenges populates the catalog on a fresh database. It only checks
// emptiness, it does not reconcile a partially edited catalog.
func SeedChallenges() error {
	var count int64

	if err := db.DB.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	challenges := defaultChallenges()

	return db.DB.Create(&challenges).Error
}
