package draws_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/choicedata/draws"
)

// RegistrySuite exercises native/user partitioning and resolution.
type RegistrySuite struct {
	suite.Suite
	reg *draws.Registry
}

func (s *RegistrySuite) SetupTest() {
	s.reg = draws.NewRegistry()
}

// halton13 mirrors a typical user-defined generator.
var halton13 = draws.Halton(13, draws.HaltonSkip)

// TestNativeOrder verifies the native table and its description format.
func (s *RegistrySuite) TestNativeOrder() {
	names := s.reg.NativeNames()
	s.Require().Len(names, 21)
	s.Require().Equal(draws.TypeUniform, names[0])
	s.Require().Equal(draws.TypeNormalMLHSAnti, names[len(names)-1])

	desc := s.reg.DescribeNative()
	s.Require().Len(desc, len(names))
	s.Require().Equal("UNIFORM: Uniform U[0, 1]", desc[0])
	s.Require().Equal("UNIFORM_HALTON2: Halton draws with base 2, skipping the first 10", desc[2])
	for i, d := range desc {
		s.Require().True(strings.HasPrefix(d, names[i]+": "), d)
	}
}

// TestRegisterNativeNameCollides checks every native name is reserved.
func (s *RegistrySuite) TestRegisterNativeNameCollides() {
	for _, name := range s.reg.NativeNames() {
		err := s.reg.Register(name, halton13, "clash")
		s.Require().ErrorIs(err, draws.ErrNameCollision, name)
	}
	s.Require().Empty(s.reg.UserNames())

	// Case-sensitive: a lower-case spelling is a distinct user name.
	s.Require().NoError(s.reg.Register("uniform", draws.Uniform, "lower case"))
}

func (s *RegistrySuite) TestRegisterAndResolveUser() {
	s.Require().NoError(s.reg.Register("HALTON13", halton13, "Halton draws, base 13, skipping 10"))
	gen, err := s.reg.Resolve("HALTON13")
	s.Require().NoError(err)

	m, err := gen(nil, 2, 3)
	s.Require().NoError(err)
	r, c := m.Dims()
	s.Require().Equal(2, r)
	s.Require().Equal(3, c)

	// Overwrite keeps a single entry.
	s.Require().NoError(s.reg.Register("HALTON13", draws.Halton(13, 0), "no skip"))
	s.Require().Equal([]string{"HALTON13"}, s.reg.UserNames())
	e, ok := s.reg.Lookup("HALTON13")
	s.Require().True(ok)
	s.Require().Equal("no skip", e.Description)
}

func (s *RegistrySuite) TestRegisterInvalid() {
	s.Require().ErrorIs(s.reg.Register("", halton13, "x"), draws.ErrInvalidGenerator)
	s.Require().ErrorIs(s.reg.Register("X", nil, "x"), draws.ErrInvalidGenerator)
}

// TestRegisterAllIsAtomic checks a batch with one reserved name inserts nothing.
func (s *RegistrySuite) TestRegisterAllIsAtomic() {
	err := s.reg.RegisterAll([]draws.Entry{
		{Name: "LOGNORMAL", Generate: draws.Normal, Description: "ok"},
		{Name: draws.TypeNormal, Generate: draws.Normal, Description: "clash"},
	})
	s.Require().ErrorIs(err, draws.ErrNameCollision)
	s.Require().Empty(s.reg.UserNames())

	s.Require().NoError(s.reg.RegisterAll([]draws.Entry{
		{Name: "LOGNORMAL", Generate: draws.Normal, Description: "ok"},
		{Name: "EXP", Generate: draws.Uniform, Description: "ok"},
	}))
	s.Require().Equal([]string{"EXP", "LOGNORMAL"}, s.reg.UserNames())
}

// TestResolveUnknownListsBothRegistries checks the diagnostic message.
func (s *RegistrySuite) TestResolveUnknownListsBothRegistries() {
	_, err := s.reg.Resolve("BOGUS")
	s.Require().ErrorIs(err, draws.ErrUnknownDrawType)
	s.Require().Contains(err.Error(), "BOGUS")
	s.Require().Contains(err.Error(), "Native types: [UNIFORM, UNIFORM_ANTI,")
	s.Require().Contains(err.Error(), "User defined: []")

	s.Require().NoError(s.reg.Register("HALTON13", halton13, "user"))
	_, err = s.reg.Resolve("BOGUS")
	s.Require().Contains(err.Error(), "User defined: [HALTON13]")
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// TestRegistriesAreIndependent checks user tables are per instance.
func TestRegistriesAreIndependent(t *testing.T) {
	a, b := draws.NewRegistry(), draws.NewRegistry()
	constant := func(_ *rand.Rand, n, d int) (*mat.Dense, error) { return mat.NewDense(n, d, nil), nil }
	require.NoError(t, a.Register("ZERO", constant, "zeros"))
	_, err := b.Resolve("ZERO")
	require.ErrorIs(t, err, draws.ErrUnknownDrawType)
}
