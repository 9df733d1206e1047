package sat

// Assignment is a lifted boolean: the truth value a certificate holds for a
// variable, which is either True, False, or Unassigned.
type Assignment int8

const (
	Unassigned Assignment = 0
	True       Assignment = 1
	False      Assignment = -1
)

// Lift returns the Assignment corresponding to the given bool.
func Lift(b bool) Assignment {
	if b {
		return True
	}
	return False
}

// Inverse returns the negated assignment. Unassigned is its own inverse.
func (a Assignment) Inverse() Assignment {
	return -a
}

func (a Assignment) String() string {
	switch a {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Unassigned"
	}
}
