// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/kdiff/internal/tree"
)

// doc parses a YAML literal into a tree. An empty literal is an empty mapping.
func doc(t *testing.T, s string) *tree.Node {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(s), &n))
	root, err := tree.FromYAML(&n)
	require.NoError(t, err)
	if root.IsScalar() && root.Value == nil {
		return tree.Mapping()
	}
	return root
}

func fixture(t *testing.T, name string) *tree.Node {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return doc(t, string(b))
}

// quiet returns a Differ whose log output is captured and discarded.
func quiet(opts ...Option) *Differ {
	logger := &log.Logger{Handler: memory.New(), Level: log.DebugLevel}
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func paths(records []Record) []string {
	out := []string{}
	for _, r := range records {
		out = append(out, r.Path)
	}
	return out
}

const deployment = `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 3
  template:
    spec:
      containers:
        - name: nginx
          image: nginx:1.16.3
`

func TestDiffIdentity(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"deployment", deployment},
		{"empty lists", "items: []\nnested:\n  more: []\n"},
		{"scalar list", "args: [a, b, c]\n"},
		{"duplicate identities", "env:\n  - name: A\n    value: 1\n  - name: A\n    value: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc(t, tt.doc)
			res := quiet().Diff(d, doc(t, tt.doc))
			assert.True(t, res.Empty(), "unexpected records: %+v", res)
		})
	}

	for _, name := range []string{"config_file_1.yaml", "config_file_2.yaml", "config_file_3.yaml"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, quiet().Diff(fixture(t, name), fixture(t, name)).Empty())
		})
	}
}

func TestDiffNilDocuments(t *testing.T) {
	res := quiet().Diff(nil, nil)
	assert.True(t, res.Empty())

	res = quiet().Diff(nil, doc(t, "kind: Deployment\n"))
	assert.Equal(t, []string{"kind"}, paths(res.Added))
}

func TestDiffScalarAdded(t *testing.T) {
	res := quiet().Diff(doc(t, "kind: Deployment\n"), doc(t, "kind: Deployment\nreplicas: 3\n"))

	require.Len(t, res.Added, 1)
	assert.Equal(t, "replicas", res.Added[0].Path)
	assert.Equal(t, 3, res.Added[0].NewValue.Value)
	assert.Nil(t, res.Added[0].OldValue)
	assert.Empty(t, res.Removed)
	assert.Empty(t, res.Changed)
}

func TestDiffNewMappingDecomposesToLeaves(t *testing.T) {
	res := quiet().Diff(
		doc(t, "kind: Deployment\n"),
		doc(t, "kind: Deployment\nspec:\n  replicas: 3\n"),
	)

	require.Len(t, res.Added, 1)
	assert.Equal(t, "spec.replicas", res.Added[0].Path)
	assert.Equal(t, 3, res.Added[0].NewValue.Value)
	assert.Empty(t, res.Removed)
	assert.Empty(t, res.Changed)
}

func TestDiffNewNestedMappingStopsAtSequences(t *testing.T) {
	current := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 1
`
	desired := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 1
  template:
    spec:
      containers:
        - name: nginx
          image: nginx:1.16.3
`
	res := quiet().Diff(doc(t, current), doc(t, desired))

	require.Len(t, res.Added, 1)
	assert.Equal(t, "spec.template.spec.containers", res.Added[0].Path)
	assert.True(t, res.Added[0].NewValue.IsSequence())
	assert.Equal(t, `[{"name":"nginx","image":"nginx:1.16.3"}]`, res.Added[0].NewValue.String())
}

func TestDiffNewEmptyMapping(t *testing.T) {
	res := quiet().Diff(doc(t, "kind: Deployment\n"), doc(t, "kind: Deployment\nspec: {}\n"))

	require.Len(t, res.Added, 1)
	assert.Equal(t, "spec", res.Added[0].Path)
	assert.True(t, res.Added[0].NewValue.IsMapping())
}

func TestDiffRemovedMappingIsOneRecord(t *testing.T) {
	current := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 1
  template:
    spec:
      containers:
        - name: nginx
          image: nginx:1.16.3
`
	desired := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 1
`
	res := quiet().Diff(doc(t, current), doc(t, desired))

	require.Len(t, res.Removed, 1)
	assert.Equal(t, "spec.template", res.Removed[0].Path)
	assert.True(t, tree.Equal(
		doc(t, "spec:\n  containers:\n    - name: nginx\n      image: nginx:1.16.3\n"),
		res.Removed[0].OldValue,
	))
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Changed)
}

func TestDiffAdditionPolicyAsymmetry(t *testing.T) {
	base := "kind: Deployment\n"

	tests := []struct {
		name      string
		extra     string
		wantPaths []string
	}{
		{
			name:      "mapping decomposes",
			extra:     "meta:\n  labels:\n    app: web\n    tier: fe\n",
			wantPaths: []string{"meta.labels.app", "meta.labels.tier"},
		},
		{
			name:      "scalar is one record",
			extra:     "replicas: 2\n",
			wantPaths: []string{"replicas"},
		},
		{
			name:      "sequence is one record",
			extra:     "ports:\n  - containerPort: 80\n  - containerPort: 443\n",
			wantPaths: []string{"ports"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added := quiet().Diff(doc(t, base), doc(t, base+tt.extra))
			assert.Equal(t, tt.wantPaths, paths(added.Added))

			// The reverse direction always reports the whole key once.
			removed := quiet().Diff(doc(t, base+tt.extra), doc(t, base))
			require.Len(t, removed.Removed, 1)
			assert.Equal(t, firstSegment(tt.wantPaths[0]), removed.Removed[0].Path)
		})
	}
}

func firstSegment(p string) string {
	for i, r := range p {
		if r == '.' {
			return p[:i]
		}
	}
	return p
}

func TestDiffChangedScalar(t *testing.T) {
	res := quiet().Diff(
		doc(t, "kind: Deployment\nspec:\n  replicas: 1\n"),
		doc(t, "kind: Deployment\nspec:\n  replicas: 3\n"),
	)

	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
	require.Len(t, res.Changed, 1)
	assert.Equal(t, "spec.replicas", res.Changed[0].Path)
	assert.Equal(t, 1, res.Changed[0].OldValue.Value)
	assert.Equal(t, 3, res.Changed[0].NewValue.Value)
}

func TestDiffTypeMismatchIsChange(t *testing.T) {
	res := quiet().Diff(
		doc(t, "ports: 80\nlabels:\n  app: web\n"),
		doc(t, "ports: [80]\nlabels: web\n"),
	)

	assert.Equal(t, []string{"ports", "labels"}, paths(res.Changed))
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestDiffNumericEquality(t *testing.T) {
	res := quiet().Diff(doc(t, "ratio: 1\n"), doc(t, "ratio: 1.0\n"))
	assert.True(t, res.Empty())
}

func TestDiffCreateAndDeleteObject(t *testing.T) {
	res := quiet().Diff(doc(t, ""), doc(t, deployment))
	assert.Equal(t,
		[]string{"kind", "apiVersion", "spec.replicas", "spec.template.spec.containers"},
		paths(res.Added))
	assert.Empty(t, res.Removed)

	res = quiet().Diff(doc(t, deployment), doc(t, ""))
	assert.Equal(t, []string{"kind", "apiVersion", "spec"}, paths(res.Removed))
	assert.Empty(t, res.Added)
}

func TestDiffKindChange(t *testing.T) {
	desired := "kind: StatefulSet" + deployment[len("\nkind: Deployment"):]
	res := quiet().Diff(doc(t, deployment), doc(t, desired))

	require.Len(t, res.Changed, 1)
	assert.Equal(t, "kind", res.Changed[0].Path)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestDiffMultiCrud(t *testing.T) {
	current := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 1
  template:
    spec:
      containers:
        - name: nginx
          image: nginx:1.14.2
          env:
            - name: DATABASE_HOST
              value: db1.example.com
`
	desired := `
kind: Deployment
apiVersion: apps/v1
spec:
  replicas: 3
  template:
    spec:
      containers:
        - name: nginx
          image: nginx:1.16.3
          env:
            - name: DATABASE_HOST
              value: db2.example.com
            - name: MESSAGE_BROKER_HOST
              value: kfk1.example.com
`
	res := quiet().Diff(doc(t, current), doc(t, desired))

	assert.Empty(t, res.Removed)
	assert.Equal(t,
		[]string{"spec.template.spec.containers[nginx].env[MESSAGE_BROKER_HOST]"},
		paths(res.Added))
	assert.Equal(t, []string{
		"spec.replicas",
		"spec.template.spec.containers[nginx].image",
		"spec.template.spec.containers[nginx].env[DATABASE_HOST].value",
	}, paths(res.Changed))
}

func TestDiffListIdentityMatching(t *testing.T) {
	res := quiet().Diff(
		doc(t, "containers:\n  - name: nginx\n    image: v1\n"),
		doc(t, "containers:\n  - name: nginx\n    image: v2\n"),
	)

	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
	require.Len(t, res.Changed, 1)
	assert.Equal(t, "containers[nginx].image", res.Changed[0].Path)
	assert.Equal(t, "v1", res.Changed[0].OldValue.Value)
	assert.Equal(t, "v2", res.Changed[0].NewValue.Value)
}

func TestDiffListReorderIsNotAChange(t *testing.T) {
	res := quiet().Diff(
		doc(t, "env:\n  - name: A\n    value: 1\n  - name: B\n    value: 2\n"),
		doc(t, "env:\n  - name: B\n    value: 2\n  - name: A\n    value: 1\n"),
	)
	assert.True(t, res.Empty())
}

func TestDiffListElementRemovedByKey(t *testing.T) {
	res := quiet().Diff(
		doc(t, "containers:\n  - name: nginx\n    image: v1\n  - name: sidecar\n    image: busybox\n"),
		doc(t, "containers:\n  - name: nginx\n    image: v1\n"),
	)

	require.Len(t, res.Removed, 1)
	assert.Equal(t, "containers[sidecar]", res.Removed[0].Path)
	assert.True(t, tree.Equal(doc(t, "name: sidecar\nimage: busybox\n"), res.Removed[0].OldValue))
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Changed)
}

func TestDiffListFallsBackToFirstKey(t *testing.T) {
	res := quiet().Diff(
		doc(t, "ports:\n  - containerPort: 80\n    protocol: TCP\n"),
		doc(t, "ports:\n  - containerPort: 80\n    protocol: UDP\n  - containerPort: 443\n"),
	)

	assert.Equal(t, []string{"ports[443]"}, paths(res.Added))
	assert.Equal(t, []string{"ports[80].protocol"}, paths(res.Changed))
}

func TestDiffEmptyListSentinels(t *testing.T) {
	res := quiet().Diff(doc(t, "items: []\n"), doc(t, "items:\n  - name: a\n"))
	require.Len(t, res.Removed, 1)
	assert.Equal(t, Record{Path: "items", Message: MsgCurrentListEmpty}, res.Removed[0])
	assert.Empty(t, res.Added)

	res = quiet().Diff(doc(t, "items:\n  - name: a\n"), doc(t, "items: []\n"))
	require.Len(t, res.Added, 1)
	assert.Equal(t, Record{Path: "items", Message: MsgDesiredListEmpty}, res.Added[0])
	assert.Empty(t, res.Removed)
}

func TestDiffScalarListsCompareWholesale(t *testing.T) {
	res := quiet().Diff(doc(t, "args: [a, b]\n"), doc(t, "args: [b, a]\n"))

	require.Len(t, res.Changed, 1)
	assert.Equal(t, "args", res.Changed[0].Path)
	assert.Equal(t, `["a","b"]`, res.Changed[0].OldValue.String())
	assert.Equal(t, `["b","a"]`, res.Changed[0].NewValue.String())
}

func TestDiffDuplicateIdentities(t *testing.T) {
	res := quiet().Diff(
		doc(t, "env:\n  - name: A\n    value: 1\n  - name: A\n    value: 2\n"),
		doc(t, "env:\n  - name: A\n    value: 1\n  - name: A\n    value: 3\n"),
	)

	assert.Equal(t, []string{"env[A#2].value"}, paths(res.Changed))
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestDiffDuplicateIdentityDoesNotMatchLookalikeValue(t *testing.T) {
	tests := []struct {
		name    string
		current string
		desired string
		path    string
	}{
		{
			name:    "occurrence suffix",
			current: "env:\n  - name: A\n    value: 1\n  - name: A\n    value: 2\n",
			desired: "env:\n  - name: A\n    value: 1\n  - name: \"A#2\"\n    value: 2\n",
			path:    "env[A#2]",
		},
		{
			name:    "position",
			current: "env:\n  - name: A\n  - value: 2\n",
			desired: "env:\n  - name: A\n  - name: \"#1\"\n    value: 2\n",
			path:    "env[#1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := quiet().Diff(doc(t, tt.current), doc(t, tt.desired))

			assert.Equal(t, []string{tt.path}, paths(res.Removed))
			assert.Equal(t, []string{tt.path}, paths(res.Added))
			assert.Empty(t, res.Changed)
		})
	}
}

func TestDiffElementsWithoutIdentityArePositional(t *testing.T) {
	res := quiet().Diff(
		doc(t, "rules:\n  - name: a\n    verb: get\n  - verb: list\n"),
		doc(t, "rules:\n  - name: a\n    verb: get\n  - verb: watch\n"),
	)

	assert.Equal(t, []string{"rules[#1].verb"}, paths(res.Changed))
}

func TestDiffExplicitIdentityKeys(t *testing.T) {
	current := "ports:\n  - protocol: TCP\n    containerPort: 80\n  - protocol: TCP\n    containerPort: 443\n"
	desired := "ports:\n  - protocol: TCP\n    containerPort: 443\n"

	// Without a table the first key, protocol, is shared by both elements.
	res := quiet().Diff(doc(t, current), doc(t, desired))
	assert.Equal(t, []string{"ports[TCP#2]"}, paths(res.Removed))

	res = quiet(WithIdentityKeys(map[string]string{"ports": "containerPort"})).Diff(doc(t, current), doc(t, desired))
	assert.Equal(t, []string{"ports[80]"}, paths(res.Removed))
	assert.Empty(t, res.Changed)
}

func TestDiffIdentityKeysNormalizedPath(t *testing.T) {
	current := `
containers:
  - name: web
    ports:
      - protocol: TCP
        containerPort: 80
`
	desired := `
containers:
  - name: web
    ports:
      - protocol: TCP
        containerPort: 8080
`
	res := quiet(WithIdentityKeys(map[string]string{
		"containers[*].ports": "containerPort",
	})).Diff(doc(t, current), doc(t, desired))

	assert.Equal(t, []string{"containers[web].ports[80]"}, paths(res.Removed))
	assert.Equal(t, []string{"containers[web].ports[8080]"}, paths(res.Added))
}

func TestDiffCustomKeySelector(t *testing.T) {
	var seen []string
	selector := func(path string, first *tree.Node) string {
		seen = append(seen, path)
		return "id"
	}

	res := quiet(WithKeySelector(selector)).Diff(
		doc(t, "items:\n  - name: x\n    id: 1\n"),
		doc(t, "items:\n  - name: y\n    id: 1\n"),
	)

	assert.Equal(t, []string{"items"}, seen)
	assert.Equal(t, []string{"items[1].name"}, paths(res.Changed))
}

func TestDiffIgnoredPaths(t *testing.T) {
	current := `
metadata:
  name: web
  resourceVersion: "100"
spec:
  containers:
    - name: nginx
      image: v1
      imagePullPolicy: Always
status:
  ready: 1
`
	desired := `
metadata:
  name: web
spec:
  containers:
    - name: nginx
      image: v2
      imagePullPolicy: IfNotPresent
`
	res := quiet(WithIgnoredPaths([]string{
		"metadata.resourceVersion",
		"status",
		"spec.containers[*].imagePullPolicy",
		" ",
	})).Diff(doc(t, current), doc(t, desired))

	assert.Empty(t, res.Removed)
	assert.Empty(t, res.Added)
	assert.Equal(t, []string{"spec.containers[nginx].image"}, paths(res.Changed))
}

func TestDiffIgnoredConcreteElement(t *testing.T) {
	res := quiet(WithIgnoredPaths([]string{"containers[sidecar]"})).Diff(
		doc(t, "containers:\n  - name: nginx\n  - name: sidecar\n    image: a\n"),
		doc(t, "containers:\n  - name: nginx\n  - name: sidecar\n    image: b\n"),
	)
	assert.True(t, res.Empty())
}

func TestDiffFixtures(t *testing.T) {
	res := quiet().Diff(fixture(t, "config_file_1.yaml"), fixture(t, "config_file_2.yaml"))

	assert.Equal(t, []string{
		"metadata.labels.tier",
		"spec.template.spec.containers[sidecar]",
		"spec.template.spec.containers[nginx].env[LOG_LEVEL]",
	}, paths(res.Removed))
	assert.Equal(t, []string{
		"spec.template.spec.containers[nginx].env[MESSAGE_BROKER_HOST]",
		"spec.template.spec.containers[nginx].resources.requests.cpu",
	}, paths(res.Added))
	assert.Equal(t, []string{
		"spec.replicas",
		"spec.template.spec.containers[nginx].image",
		"spec.template.spec.containers[nginx].env[DATABASE_HOST].value",
	}, paths(res.Changed))

	tests := []struct {
		current     string
		desired     string
		wantChanged []string
		wantAdded   []string
	}{
		{
			current:     "config_file_2.yaml",
			desired:     "config_file_3.yaml",
			wantChanged: []string{"spec.template.spec.containers[nginx].image"},
			wantAdded:   []string{"spec.template.spec.containers[nginx].resources.limits.memory"},
		},
		{
			current:     "config_file_1.yaml",
			desired:     "config_file_3.yaml",
			wantChanged: []string{"spec.replicas", "spec.template.spec.containers[nginx].image"},
			wantAdded:   []string{"spec.template.spec.containers[nginx].resources.limits.memory"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.desired, func(t *testing.T) {
			res := quiet().Diff(fixture(t, tt.current), fixture(t, tt.desired))
			assert.NotEmpty(t, res.Removed)
			assert.NotEmpty(t, res.Added)
			assert.NotEmpty(t, res.Changed)
			assert.Subset(t, paths(res.Changed), tt.wantChanged)
			assert.Subset(t, paths(res.Added), tt.wantAdded)
		})
	}
}

func TestDiffSymmetry(t *testing.T) {
	a := `
kind: Deployment
replicas: 1
image: v1
containers:
  - name: nginx
    image: v1
  - name: sidecar
    image: busybox
`
	b := `
kind: Deployment
replicas: 3
paused: true
containers:
  - name: nginx
    image: v2
  - name: proxy
    image: envoy
`
	ab := quiet().Diff(doc(t, a), doc(t, b))
	ba := quiet().Diff(doc(t, b), doc(t, a))

	assert.ElementsMatch(t, paths(ab.Removed), paths(ba.Added))
	assert.ElementsMatch(t, paths(ab.Added), paths(ba.Removed))
	assert.ElementsMatch(t, paths(ab.Changed), paths(ba.Changed))

	for _, c := range ab.Changed {
		for _, r := range ba.Changed {
			if r.Path == c.Path {
				assert.True(t, tree.Equal(c.OldValue, r.NewValue))
				assert.True(t, tree.Equal(c.NewValue, r.OldValue))
			}
		}
	}
}

func TestDiffDoesNotMutateInputs(t *testing.T) {
	current := fixture(t, "config_file_1.yaml")
	desired := fixture(t, "config_file_2.yaml")
	before := current.String() + desired.String()

	quiet().Diff(current, desired)

	assert.Equal(t, before, current.String()+desired.String())
}

func TestDiffLogsEachKey(t *testing.T) {
	h := memory.New()
	d := New(WithLogger(&log.Logger{Handler: h, Level: log.DebugLevel}))

	d.Diff(doc(t, "kind: Deployment\n"), doc(t, "kind: Deployment\n"))

	var messages []string
	for _, e := range h.Entries {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "processing key 'kind' with path 'kind'")
}

func TestCheckMismatches(t *testing.T) {
	current := doc(t, "kind: Deployment\napiVersion: apps/v1\nspec:\n  replicas: 1\n")

	tests := []struct {
		name    string
		desired string
		want    map[string]bool
	}{
		{
			name:    "kind mismatch",
			desired: "kind: StatefulSet\napiVersion: apps/v1\nspec:\n  replicas: 1\n",
			want:    map[string]bool{"kind": true, "apiVersion": false},
		},
		{
			name:    "version mismatch",
			desired: "kind: Deployment\napiVersion: apps/v2\nspec:\n  replicas: 1\n",
			want:    map[string]bool{"kind": false, "apiVersion": true},
		},
		{
			name:    "field absent on one side",
			desired: "apiVersion: apps/v1\n",
			want:    map[string]bool{"kind": true, "apiVersion": false},
		},
		{
			name:    "other differences do not matter",
			desired: "kind: Deployment\napiVersion: apps/v1\nspec:\n  replicas: 9\n",
			want:    map[string]bool{"kind": false, "apiVersion": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quiet().CheckMismatches(current, doc(t, tt.desired), []string{"kind", "apiVersion"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckMismatchesBothAbsent(t *testing.T) {
	got := quiet().CheckMismatches(doc(t, "a: 1\n"), doc(t, "b: 2\n"), []string{"kind"})
	assert.Equal(t, map[string]bool{"kind": false}, got)
}

func TestCheckMismatchesWarns(t *testing.T) {
	h := memory.New()
	d := New(WithLogger(&log.Logger{Handler: h, Level: log.InfoLevel}))

	d.CheckMismatches(doc(t, "kind: Deployment\n"), doc(t, "kind: StatefulSet\n"), []string{"kind"})

	require.Len(t, h.Entries, 1)
	assert.Equal(t, log.WarnLevel, h.Entries[0].Level)
	assert.Equal(t, "'kind' mismatch. Current: Deployment, Desired: StatefulSet", h.Entries[0].Message)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"spec.replicas", "spec.replicas"},
		{"spec.containers[nginx].image", "spec.containers[*].image"},
		{"a[x].b[y].c", "a[*].b[*].c"},
		{"a[[nested]]", "a[*]"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.path))
		})
	}
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "kind", childPath("", "kind"))
	assert.Equal(t, "spec.replicas", childPath("spec", "replicas"))
	assert.Equal(t, "containers[nginx]", elementPath("containers", "nginx"))
	assert.Equal(t, "env", lastSegment("containers[*].env"))
	assert.Equal(t, "containers", lastSegment("spec.template.spec.containers"))
	assert.Equal(t, "ports", lastSegment("ports"))
}
