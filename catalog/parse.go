package catalog

// Parse helpers map the string values accepted in preset files back to
// their enum values. They report false for strings naming no option.

func ParseProjectType(s string) (ProjectType, bool) {
	for v, name := range projectTypeNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

func ParseFrontendFramework(s string) (FrontendFramework, bool) {
	for v, name := range frontendFrameworkNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

func ParseBackendFramework(s string) (BackendFramework, bool) {
	for v, name := range backendFrameworkNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

func ParseDatabase(s string) (Database, bool) {
	for v, name := range databaseNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

func ParseORM(s string) (ORM, bool) {
	for v, name := range ormNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

func ParseTool(s string) (Tool, bool) {
	for v, name := range toolNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}
