package duosweeper

import "github.com/vovakirdan/duosweeper/internal/games/duosweeper/questions"

// Reward is the lives and score change applied after a question is answered.
// The power cost is charged separately.
type Reward struct {
	Lives int
	Score int
}

// RewardRule holds the outcome for a right and a wrong answer.
type RewardRule struct {
	Correct Reward
	Wrong   Reward
}

// RewardTable maps a question difficulty to its rule.
type RewardTable map[questions.Difficulty]RewardRule

// DefaultRewards returns the built-in reward table.
func DefaultRewards() RewardTable {
	return RewardTable{
		questions.Easy: {
			Correct: Reward{Score: 3},
			Wrong:   Reward{Score: -3},
		},
		questions.Medium: {
			Correct: Reward{Lives: 1, Score: 6},
			Wrong:   Reward{Score: -6},
		},
		questions.Hard: {
			Correct: Reward{Lives: 1, Score: 10},
			Wrong:   Reward{Lives: -1, Score: -10},
		},
	}
}

// For returns the reward for answering a question of difficulty d.
// Unknown difficulties fall back to the easy rule, then to nothing.
func (t RewardTable) For(d questions.Difficulty, correct bool) Reward {
	rule, ok := t[d]
	if !ok {
		rule = t[questions.Easy]
	}
	if correct {
		return rule.Correct
	}
	return rule.Wrong
}
