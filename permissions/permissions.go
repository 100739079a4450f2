/*
Permission data of the application under test.

The permissions file maps every user type to the functions it can use and the permission tokens it
holds for each of them:

	permissions:
	  admin:
	    customers: [read, write]
	  read_only:
	    customers: [limit_read]

A function is readable with `read` or `limit_read` and writable with `write` or `limit_write`.
Missing user types or functions have no permissions.
*/
package permissions

import (
	"os"
	"sort"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Permission tokens understood by the generator.
const (
	Read       = "read"
	LimitRead  = "limit_read"
	Write      = "write"
	LimitWrite = "limit_write"
)

var knownTokens = map[string]bool{Read: true, LimitRead: true, Write: true, LimitWrite: true}

// Policy lines are (user type, function, token) triples.
const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Store holds the permission tokens of every (user type, function) pair.
type Store struct {
	tokens   map[string]map[string][]string
	enforcer *casbin.Enforcer
}

// New builds a store from user type -> function -> tokens.
func New(tokens map[string]map[string][]string) (*Store, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, errors.Wrap(err, "permission model")
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "permission enforcer")
	}

	s := &Store{
		tokens:   make(map[string]map[string][]string, len(tokens)),
		enforcer: enforcer,
	}
	for userType, functions := range tokens {
		s.tokens[userType] = make(map[string][]string, len(functions))
		for function, list := range functions {
			set := normalize(list)
			s.tokens[userType][function] = set
			for _, token := range set {
				if !knownTokens[token] {
					logging.L().Warn("Unknown permission token",
						zap.String("userType", userType), zap.String("function", function), zap.String("token", token))
				}
				if _, err := enforcer.AddPolicy(userType, function, token); err != nil {
					return nil, errors.Wrapf(err, "add policy %s/%s/%s", userType, function, token)
				}
			}
		}
	}
	return s, nil
}

// Load reads the `permissions` section of a YAML file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.ConfigNotFound(path, err)
	}
	return Parse(data, path)
}

// PermissionsFor returns the sorted tokens a user type holds for a function. Unknown pairs return
// an empty set.
func (s *Store) PermissionsFor(userType, function string) []string {
	return append([]string{}, s.tokens[userType][function]...)
}

// Readable returns true if the user type can see the function.
func (s *Store) Readable(userType, function string) bool {
	return s.holdsAny(userType, function, Read, LimitRead)
}

// Writable returns true if the user type can create, change or delete records of the function.
func (s *Store) Writable(userType, function string) bool {
	return s.holdsAny(userType, function, Write, LimitWrite)
}

func (s *Store) holdsAny(userType, function string, tokens ...string) bool {
	for _, token := range tokens {
		ok, err := s.enforcer.Enforce(userType, function, token)
		if err != nil {
			logging.L().Error("Permission check failed",
				zap.String("userType", userType), zap.String("function", function), zap.Error(err))
			return false
		}
		if ok {
			return true
		}
	}
	return false
}

// normalize sorts and de-duplicates a token list.
func normalize(list []string) []string {
	set := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, token := range list {
		if !seen[token] {
			seen[token] = true
			set = append(set, token)
		}
	}
	sort.Strings(set)
	return set
}
