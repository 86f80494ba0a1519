package swiss

// SelectColor decides which of pA/pB plays White, following the
// 6-rule ladder. The first matching rule wins. Rule 4 is symmetric:
// if both players' color-balance conditions hold simultaneously (a
// genuine tie), it decides nothing and falls through to rule 5. Rule 5
// only fires once at least one player has a color history to
// equalize; two players meeting for the first time both fall through
// to the rule 6 default.
func SelectColor(pA, pB *Player) (whiteID, blackID PlayerID) {
	// Rule 1: pA had back-to-back White, pB did not -> pB plays White.
	if pA.lastTwoColorsAre(White) && !pB.lastTwoColorsAre(White) {
		return pB.ID, pA.ID
	}
	// Rule 2: pA had back-to-back Black, pB did not -> pA plays White.
	if pA.lastTwoColorsAre(Black) && !pB.lastTwoColorsAre(Black) {
		return pA.ID, pB.ID
	}
	// Rule 3: symmetric cases with pA/pB swapped.
	if pB.lastTwoColorsAre(White) && !pA.lastTwoColorsAre(White) {
		return pA.ID, pB.ID
	}
	if pB.lastTwoColorsAre(Black) && !pA.lastTwoColorsAre(Black) {
		return pB.ID, pA.ID
	}

	// Rule 4: color-balance. Evaluate both symmetric sub-conditions;
	// only act if exactly one holds, otherwise it's a tie and we fall
	// through to rule 5.
	aBalancedBFavorsWhite := pA.whiteCount() >= pA.blackCount() && pB.whiteCount() > pB.blackCount()
	bBalancedAFavorsWhite := pB.whiteCount() >= pB.blackCount() && pA.whiteCount() > pA.blackCount()
	if aBalancedBFavorsWhite && !bBalancedAFavorsWhite {
		return pA.ID, pB.ID
	}
	if bBalancedAFavorsWhite && !aBalancedBFavorsWhite {
		return pB.ID, pA.ID
	}

	// Rule 5: higher-rated plays Black, to equalize historical
	// disadvantage — vacuous when neither player has played a game yet.
	if len(pA.Colors) > 0 || len(pB.Colors) > 0 {
		if pA.Rating > pB.Rating {
			return pB.ID, pA.ID
		}
		if pB.Rating > pA.Rating {
			return pA.ID, pB.ID
		}
	}

	// Rule 6: default.
	return pA.ID, pB.ID
}
