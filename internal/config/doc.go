// Package config loads and watches the estimator configuration file
// (pondplan.yaml): the six validation ranges, project input defaults, the
// equipment fleet and any advisory rules.
//
// Load(path) reads the YAML file, fills missing ranges with the built-in
// defaults, then validates every range (0 < min < max) before handing out
// domain values via ValidationRules, Project, BuildFleet and AdvisorRules.
// Range violations surface as *validate.ConfigError so callers can tell a
// broken rule table from a broken file.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and
// calls onChange with the newly parsed Config. It handles the
// rename-then-create pattern used by atomic-save editors by re-adding the
// watch after each reload.
package config
