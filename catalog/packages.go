package catalog

// PackageSet holds the npm package names a selection requires, split
// into runtime and development dependencies. The two lists are
// disjoint, deduplicated, and ordered by catalog definition so the
// install commands they produce are deterministic.
type PackageSet struct {
	Runtime []string
	Dev     []string
}

func (s PackageSet) Empty() bool {
	return len(s.Runtime) == 0 && len(s.Dev) == 0
}

type packages struct {
	runtime []string
	dev     []string
}

// toolPackages is ordered; resolution order follows this table, not the
// order tools were selected in.
var toolPackages = []struct {
	tool Tool
	pkgs packages
}{
	{Dotenv, packages{runtime: []string{"dotenv"}}},
	{CORS, packages{runtime: []string{"cors"}, dev: []string{"@types/cors"}}},
	{Morgan, packages{runtime: []string{"morgan"}, dev: []string{"@types/morgan"}}},
	{Helmet, packages{runtime: []string{"helmet"}}},
	{Nodemon, packages{dev: []string{"nodemon"}}},
	{ESLint, packages{dev: []string{"eslint"}}},
	{Prettier, packages{dev: []string{"prettier"}}},
	{Axios, packages{runtime: []string{"axios"}}},
	{ReactRouter, packages{runtime: []string{"react-router-dom"}}},
	{Zustand, packages{runtime: []string{"zustand"}}},
}

var backendFrameworkPackages = map[BackendFramework]packages{
	Express: {runtime: []string{"express"}},
	ExpressTS: {
		runtime: []string{"express"},
		dev:     []string{"typescript", "tsx", "@types/express", "@types/node"},
	},
}

var databasePackages = map[Database]packages{
	Postgres: {runtime: []string{"pg"}, dev: []string{"@types/pg"}},
	MySQL:    {runtime: []string{"mysql2"}},
	MongoDB:  {runtime: []string{"mongoose"}},
}

var ormPackages = map[ORM]packages{
	Prisma:  {runtime: []string{"@prisma/client"}, dev: []string{"prisma"}},
	Drizzle: {runtime: []string{"drizzle-orm"}, dev: []string{"drizzle-kit"}},
}

// scaffoldExtraPackages are the styling/build packages a frontend
// template requires beyond what its scaffold tool installs.
var scaffoldExtraPackages = map[FrontendFramework]packages{
	ReactTailwind: {dev: []string{"tailwindcss", "@tailwindcss/vite"}},
}

// ormInitArgs are extra initialization commands an ORM needs after its
// packages are installed, as npx argument lists.
var ormInitArgs = map[ORM][][]string{
	Prisma: {{"prisma", "init"}},
}

// setBuilder accumulates package names, dropping duplicates while
// preserving first-seen order.
type setBuilder struct {
	set  PackageSet
	seen map[string]bool
}

func newSetBuilder() *setBuilder {
	return &setBuilder{seen: make(map[string]bool)}
}

func (b *setBuilder) add(p packages) {
	for _, name := range p.runtime {
		if !b.seen[name] {
			b.seen[name] = true
			b.set.Runtime = append(b.set.Runtime, name)
		}
	}
	for _, name := range p.dev {
		if !b.seen[name] {
			b.seen[name] = true
			b.set.Dev = append(b.set.Dev, name)
		}
	}
}

func (b *setBuilder) addTools(tools []Tool) {
	selected := make(map[Tool]bool, len(tools))
	for _, t := range tools {
		selected[t] = true
	}
	for _, entry := range toolPackages {
		if selected[entry.tool] {
			b.add(entry.pkgs)
		}
	}
}

// ResolveTools resolves a set of tools to their packages. Tools with no
// catalog entry contribute nothing.
func ResolveTools(tools []Tool) PackageSet {
	b := newSetBuilder()
	b.addTools(tools)
	return b.set
}

// FrontendPackages resolves the packages for a frontend branch beyond
// what the scaffold template itself installs.
func FrontendPackages(tools []Tool) PackageSet {
	return ResolveTools(tools)
}

// BackendPackages resolves the full package set for a backend branch:
// framework, then database, then ORM, then tools, deduplicated in that
// order. A database of UseORM or None contributes no driver packages.
func BackendPackages(framework BackendFramework, db Database, orm ORM, tools []Tool) PackageSet {
	b := newSetBuilder()
	b.add(backendFrameworkPackages[framework])
	b.add(databasePackages[db])
	if db == UseORM {
		b.add(ormPackages[orm])
	}
	b.addTools(tools)
	return b.set
}

// ScaffoldExtras returns the styling/build packages the framework's
// template requires on top of the scaffold tool's own output.
func ScaffoldExtras(framework FrontendFramework) PackageSet {
	p := scaffoldExtraPackages[framework]
	return PackageSet{Runtime: p.runtime, Dev: p.dev}
}

// ORMInitArgs returns the npx argument lists for the ORM's
// initialization commands, in execution order.
func ORMInitArgs(orm ORM) [][]string {
	return ormInitArgs[orm]
}
