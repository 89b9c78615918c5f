package student

import (
	"cmp"
	"maps"
	stdslices "slices"

	"github.com/go-softwarelab/common/pkg/seq"
	commonslices "github.com/go-softwarelab/common/pkg/slices"
)

// FirstNames returns the first names of students, in input order.
func FirstNames(students []Student) []string {
	return commonslices.Map(students, func(s Student) string { return s.FirstName })
}

// LastNames returns the last names of students, in input order.
func LastNames(students []Student) []string {
	return commonslices.Map(students, func(s Student) string { return s.LastName })
}

// Groups returns the group names of students, in input order.
func Groups(students []Student) []string {
	return commonslices.Map(students, func(s Student) string { return s.Group })
}

// FullNames returns "FirstName LastName" for each student, in input order.
func FullNames(students []Student) []string {
	return commonslices.Map(students, Student.FullName)
}

// DistinctFirstNames returns the set of first names in ascending order.
func DistinctFirstNames(students []Student) []string {
	return stdslices.AppendSeq([]string{}, seq.SortBy(seq.Uniq(seq.FromSlice(FirstNames(students))), func(name string) string { return name }))
}

// MinStudentFirstName returns the first name of the student with the
// smallest ID, or "" if there are no students.
func MinStudentFirstName(students []Student) string {
	if len(students) == 0 {
		return ""
	}
	return stdslices.MinFunc(students, CompareByID).FirstName
}

// SortByID returns the students in natural order.
func SortByID(students []Student) []Student {
	return sorted(students, CompareByID)
}

// SortByName returns the students in name order.
func SortByName(students []Student) []Student {
	return sorted(students, CompareByName)
}

// FindByFirstName returns the students with the given first name, in name
// order.
func FindByFirstName(students []Student, name string) []Student {
	return findSorted(students, func(s Student) bool { return s.FirstName == name })
}

// FindByLastName returns the students with the given last name, in name
// order.
func FindByLastName(students []Student, name string) []Student {
	return findSorted(students, func(s Student) bool { return s.LastName == name })
}

// FindByGroup returns the members of the given group, in name order.
func FindByGroup(students []Student, group string) []Student {
	return findSorted(students, inGroup(group))
}

// FindNamesByGroup maps the last name of every member of group to a first
// name. If several members share a last name, the smallest first name is
// kept.
func FindNamesByGroup(students []Student, group string) map[string]string {
	names := make(map[string]string)
	for _, s := range commonslices.Filter(students, inGroup(group)) {
		if first, ok := names[s.LastName]; !ok || s.FirstName < first {
			names[s.LastName] = s.FirstName
		}
	}
	return names
}

// GroupsByName returns the groups in ascending name order, members sorted in
// name order.
func GroupsByName(students []Student) []Group {
	return sortedGroups(students, CompareByName)
}

// GroupsByID returns the groups in ascending name order, members sorted in
// natural order.
func GroupsByID(students []Student) []Group {
	return sortedGroups(students, CompareByID)
}

// LargestGroup returns the name of the group with the most members. Of
// several such groups, the one with the greatest name is returned. It returns
// "" if there are no students.
func LargestGroup(students []Student) string {
	return largestGroup(students, func(members []Student) int { return len(members) })
}

// LargestGroupFirstName returns the name of the group with the most distinct
// first names, with the same tie-break as LargestGroup.
func LargestGroupFirstName(students []Student) string {
	return largestGroup(students, func(members []Student) int { return len(DistinctFirstNames(members)) })
}

func inGroup(group string) func(Student) bool {
	return func(s Student) bool { return s.Group == group }
}

func sorted(students []Student, compare func(a, b Student) int) []Student {
	result := stdslices.Clone(students)
	if result == nil {
		result = []Student{}
	}
	stdslices.SortStableFunc(result, compare)
	return result
}

func findSorted(students []Student, pred func(Student) bool) []Student {
	return sorted(commonslices.Filter(students, pred), CompareByName)
}

// groupMembers collects members per group name, keeping input order within
// each group.
func groupMembers(students []Student) map[string][]Student {
	groups := make(map[string][]Student)
	for _, s := range students {
		groups[s.Group] = append(groups[s.Group], s)
	}
	return groups
}

func sortedGroups(students []Student, compare func(a, b Student) int) []Group {
	members := groupMembers(students)
	groups := make([]Group, 0, len(members))
	for _, name := range stdslices.Sorted(maps.Keys(members)) {
		groups = append(groups, Group{Name: name, Students: sorted(members[name], compare)})
	}
	return groups
}

func largestGroup(students []Student, size func([]Student) int) string {
	best, bestSize := "", -1
	for name, members := range groupMembers(students) {
		n := size(members)
		if c := cmp.Compare(n, bestSize); c > 0 || c == 0 && name > best {
			best, bestSize = name, n
		}
	}
	return best
}
