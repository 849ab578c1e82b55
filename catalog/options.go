// Package catalog holds the static tables driving plan construction:
// the selectable option enums, the packages each option requires, and
// the file contents each option produces. No other package hardcodes
// package names or template text.
package catalog

// ProjectType selects which branches of the project are scaffolded.
type ProjectType int

const (
	FrontendOnly ProjectType = iota
	BackendOnly
	Fullstack
)

var projectTypeNames = map[ProjectType]string{
	FrontendOnly: "frontend-only",
	BackendOnly:  "backend-only",
	Fullstack:    "fullstack",
}

func (p ProjectType) String() string { return projectTypeNames[p] }

// IncludesFrontend reports whether the project type has a frontend branch.
func (p ProjectType) IncludesFrontend() bool { return p == FrontendOnly || p == Fullstack }

// IncludesBackend reports whether the project type has a backend branch.
func (p ProjectType) IncludesBackend() bool { return p == BackendOnly || p == Fullstack }

// FrontendFramework is a frontend scaffolding template.
type FrontendFramework int

const (
	FrontendNone FrontendFramework = iota
	React
	ReactTS
	ReactTailwind
	Vue
)

var frontendFrameworkNames = map[FrontendFramework]string{
	FrontendNone:  "None",
	React:         "React",
	ReactTS:       "React + ts",
	ReactTailwind: "React + Tailwind",
	Vue:           "Vue",
}

func (f FrontendFramework) String() string { return frontendFrameworkNames[f] }

// TypeScript reports whether the framework variant scaffolds TypeScript sources.
func (f FrontendFramework) TypeScript() bool { return f == ReactTS }

// Tailwind reports whether the framework variant carries Tailwind CSS.
func (f FrontendFramework) Tailwind() bool { return f == ReactTailwind }

// BackendFramework is a backend server framework variant.
type BackendFramework int

const (
	BackendNone BackendFramework = iota
	Express
	ExpressTS
)

var backendFrameworkNames = map[BackendFramework]string{
	BackendNone: "None",
	Express:     "Express.js",
	ExpressTS:   "Express.js + ts",
}

func (b BackendFramework) String() string { return backendFrameworkNames[b] }

// TypeScript reports whether the framework variant uses TypeScript.
func (b BackendFramework) TypeScript() bool { return b == ExpressTS }

// Database is the backend database selection. UseORM defers driver
// choice to the selected ORM.
type Database int

const (
	DatabaseNone Database = iota
	Postgres
	MySQL
	MongoDB
	UseORM
)

var databaseNames = map[Database]string{
	DatabaseNone: "None",
	Postgres:     "Postgres",
	MySQL:        "MySQL",
	MongoDB:      "MongoDB",
	UseORM:       "use an ORM",
}

func (d Database) String() string { return databaseNames[d] }

// ORM is the backend ORM selection, meaningful only when the database
// selection is UseORM.
type ORM int

const (
	ORMNone ORM = iota
	Prisma
	Drizzle
)

var ormNames = map[ORM]string{
	ORMNone: "None",
	Prisma:  "Prisma",
	Drizzle: "Drizzle",
}

func (o ORM) String() string { return ormNames[o] }

// Tool is an auxiliary package selectable for either branch.
type Tool int

const (
	Dotenv Tool = iota
	CORS
	Morgan
	Helmet
	Nodemon
	ESLint
	Prettier
	Axios
	ReactRouter
	Zustand
)

var toolNames = map[Tool]string{
	Dotenv:      "dotenv",
	CORS:        "cors",
	Morgan:      "morgan",
	Helmet:      "helmet",
	Nodemon:     "nodemon",
	ESLint:      "eslint",
	Prettier:    "prettier",
	Axios:       "axios",
	ReactRouter: "react-router",
	Zustand:     "zustand",
}

func (t Tool) String() string { return toolNames[t] }

// Option lists presented by the prompt subsystem, in display order.
var (
	ProjectTypes       = []ProjectType{Fullstack, FrontendOnly, BackendOnly}
	FrontendFrameworks = []FrontendFramework{React, ReactTS, ReactTailwind, Vue, FrontendNone}
	BackendFrameworks  = []BackendFramework{Express, ExpressTS, BackendNone}
	Databases          = []Database{Postgres, MySQL, MongoDB, UseORM, DatabaseNone}
	ORMs               = []ORM{Prisma, Drizzle}
	FrontendTools      = []Tool{Axios, ReactRouter, Zustand, ESLint, Prettier}
	BackendTools       = []Tool{Dotenv, CORS, Morgan, Helmet, Nodemon, ESLint, Prettier}
)
