package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/DRSN-tech/shopping-cart/pkg/e"
)

// CourseInfo объединяет все атрибуты одного курса
type CourseInfo struct {
	Room       string
	Instructor string
	Time       string
}

// Catalog: проверенный индекс курсов по коду.
type Catalog struct {
	index map[string]CourseInfo
}

var (
	defaultCourseRooms = map[string]string{
		"CSC101": "3004",
		"CSC102": "4501",
		"CSC103": "6755",
		"NET110": "1244",
		"COM241": "1411",
	}
	defaultCourseInstructors = map[string]string{
		"CSC101": "Haynes",
		"CSC102": "Alvarado",
		"CSC103": "Rich",
		"NET110": "Burke",
		"COM241": "Lee",
	}
	defaultCourseTimes = map[string]string{
		"CSC101": "8:00 a.m.",
		"CSC102": "9:00 a.m.",
		"CSC103": "10:00 a.m.",
		"NET110": "11:00 a.m.",
		"COM241": "1:00 p.m.",
	}
)

// NewDefaultCatalog строит каталог из встроенных таблиц.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultCourseRooms, defaultCourseInstructors, defaultCourseTimes)
}

// NewCatalog проверяет, что три таблицы описывают один и тот же набор курсов, и строит индекс.
func NewCatalog(rooms, instructors, times map[string]string) (*Catalog, error) {
	const op = "domain.NewCatalog"

	if err := checkCatalogAlignment(rooms, instructors, times); err != nil {
		return nil, e.Wrap(op, err)
	}

	index := make(map[string]CourseInfo, len(rooms))
	for code, room := range rooms {
		index[NormalizeCourseCode(code)] = CourseInfo{
			Room:       room,
			Instructor: instructors[code],
			Time:       times[code],
		}
	}

	return &Catalog{index: index}, nil
}

// Lookup ищет курс по коду без учёта регистра и пробелов по краям.
func (c *Catalog) Lookup(code string) (CourseInfo, error) {
	info, ok := c.index[NormalizeCourseCode(code)]
	if !ok {
		return CourseInfo{}, e.Wrap(code, e.ErrCourseNotFound)
	}
	return info, nil
}

// Codes возвращает отсортированные коды курсов.
func (c *Catalog) Codes() []string {
	return slices.Sorted(maps.Keys(c.index))
}

func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func checkCatalogAlignment(rooms, instructors, times map[string]string) error {
	missingIn := func(target map[string]string, others ...map[string]string) []string {
		var missing []string
		for _, other := range others {
			for code := range other {
				if _, ok := target[code]; !ok && !slices.Contains(missing, code) {
					missing = append(missing, code)
				}
			}
		}
		slices.Sort(missing)
		return missing
	}

	var details []string
	if m := missingIn(rooms, instructors, times); len(m) > 0 {
		details = append(details, fmt.Sprintf("missing in rooms: %v", m))
	}
	if m := missingIn(instructors, rooms, times); len(m) > 0 {
		details = append(details, fmt.Sprintf("missing in instructors: %v", m))
	}
	if m := missingIn(times, rooms, instructors); len(m) > 0 {
		details = append(details, fmt.Sprintf("missing in times: %v", m))
	}

	if len(details) > 0 {
		return e.Wrap(strings.Join(details, "; "), e.ErrCatalogIntegrity)
	}
	return nil
}
