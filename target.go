package battlemap

// DetectAffected returns the tokens geometrically affected by an action.
// Pure and order-stable: results follow the insertion order of tokens, and
// the same action and token snapshot always yield the same list.
//
// Shapes per category:
//   - projectile, ray, melee: tokens whose bounding circle intersects the
//     source-to-target segment.
//   - burst, area (circle): tokens whose center lies within the radius of
//     the target point, boundary inclusive.
//   - area (cone): tokens within reach and within the half-angle of the
//     source-to-target bearing.
//   - area or interaction with explicit ids: exactly those tokens, no
//     geometry.
func DetectAffected(action Action, tokens []Token) []Token {
	switch a := action.(type) {
	case *ProjectileAction:
		return segmentAffected(a.Source, a.Target, tokens)
	case *RayAction:
		return segmentAffected(a.Source, a.Target, tokens)
	case *MeleeAction:
		return segmentAffected(a.Source, a.Target, tokens)
	case *BurstAction:
		return radiusAffected(a.Center, a.Radius, tokens)
	case *AreaAction:
		if len(a.TargetIDs) > 0 {
			return explicitAffected(a.TargetIDs, tokens)
		}
		if a.HalfAngle > 0 {
			return coneAffected(a.Source, a.Target, a.Reach, a.HalfAngle, tokens)
		}
		return radiusAffected(a.Target, a.Radius, tokens)
	case *InteractionAction:
		if a.TargetID == "" {
			return nil
		}
		return explicitAffected([]string{a.TargetID}, tokens)
	}
	return nil
}

func segmentAffected(from, to Vec2, tokens []Token) []Token {
	var hit []Token
	for _, tok := range tokens {
		if SegmentHitsCircle(from, to, tok.Circle()) {
			hit = append(hit, tok)
		}
	}
	return hit
}

func radiusAffected(center Vec2, radius float64, tokens []Token) []Token {
	area := Circle{Center: center, Radius: radius}
	var hit []Token
	for _, tok := range tokens {
		if area.Contains(tok.Position) {
			hit = append(hit, tok)
		}
	}
	return hit
}

func coneAffected(origin, aim Vec2, reach, halfAngle float64, tokens []Token) []Token {
	var hit []Token
	for _, tok := range tokens {
		if InCone(tok.Position, origin, aim, reach, halfAngle) {
			hit = append(hit, tok)
		}
	}
	return hit
}

// explicitAffected preserves token order, not id order, so results stay
// stable regardless of how the id list was built.
func explicitAffected(ids []string, tokens []Token) []Token {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var hit []Token
	for _, tok := range tokens {
		if wanted[tok.ID] {
			hit = append(hit, tok)
		}
	}
	return hit
}
