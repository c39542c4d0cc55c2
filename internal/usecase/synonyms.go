package usecase

// synonymGroups clusters alternate Romanian ingredient names that refer to
// the same real-world product. Members are stored in normalized form (see
// normalizeName); extending coverage means adding groups here, nothing else.
var synonymGroups = [][]string{
	// Cheese
	{"cascaval", "branza tare", "branza maturata"},
	{"telemea", "branza telemea", "branza alba"},
	{"mozzarella", "mozarela"},
	{"parmezan", "parmigiano", "parmigiano reggiano"},
	{"branza de vaci", "branza proaspata de vaci", "branza dulce"},
	// Dairy
	{"smantana", "smantana pentru gatit", "crema de lapte"},
	{"unt", "unt de masa"},
	{"lapte", "lapte de vaca", "lapte integral"},
	{"iaurt", "iaurt natural"},
	// Produce
	{"rosii", "tomate", "patlagele rosii"},
	{"cartofi", "barabule"},
	{"vinete", "patlagele vinete"},
	{"ardei gras", "ardei", "gogosari"},
	{"ceapa", "ceapa galbena"},
	{"usturoi", "catei de usturoi"},
	{"verdeata", "patrunjel", "marar"},
	// Meat
	{"piept de pui", "piept pui", "piept de pui dezosat"},
	{"carne tocata", "amestec tocat", "carne tocata mixta"},
	{"costita", "bacon", "pancetta"},
	// Pantry
	{"faina", "faina alba", "faina de grau"},
	{"ulei", "ulei de floarea soarelui", "ulei floarea soarelui"},
	{"zahar", "zahar tos"},
	{"orez", "orez cu bob rotund", "orez bob lung"},
	{"otet", "otet de vin"},
	{"bulion", "pasta de tomate", "suc de rosii"},
}

// synonymIndex maps each normalized member to its group.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string][]string {
	index := make(map[string][]string)
	for _, group := range synonymGroups {
		for _, member := range group {
			index[member] = group
		}
	}
	return index
}

// synonymsOf returns every member of the synonym group containing the
// normalized name. A name outside every group is trivially a synonym of
// itself, so the lookup never comes back empty.
func synonymsOf(normalizedName string) []string {
	if group, ok := synonymIndex[normalizedName]; ok {
		return group
	}
	return []string{normalizedName}
}

// synonymSetsIntersect reports whether the two synonym sets share a member.
func synonymSetsIntersect(a, b []string) bool {
	for _, sa := range a {
		for _, sb := range b {
			if sa == sb {
				return true
			}
		}
	}
	return false
}
