package config

// Project name
const ProjectName = "testspec"

// DefaultFile is the configuration file looked up in the working directory when none is given.
const DefaultFile = "testspec.yaml"

// EnvPrefix prefixes the environment variables overriding configuration keys, e.g.
// TESTSPEC_PATHS_OUTPUT for `paths.output`.
const EnvPrefix = "TESTSPEC"
