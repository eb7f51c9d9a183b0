package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (e *testEnv) stubService(name, state string) {
	e.transport.on("GET /dedicatedCloud/"+name,
		`{"serviceName": "`+name+`", "location": "pcc-gra", "state": "`+state+`", "version": {"major": "7.0"}}`)
}

func TestFilerList_UndeliveredServiceShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	env.stubService("pcc-1", "provisionning")
	resp := &spyResponder{}

	inv := invocation("hosted-private-cloud", "filer", "list", techCaller(), map[string]string{"service": "pcc-1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindWarning {
		t.Errorf("kind = %v, want warning", out.Kind)
	}
	if !strings.Contains(out.Description, "delivered") {
		t.Errorf("expected delivery notice:\n%s", out.Description)
	}
	for _, call := range env.transport.Calls() {
		if strings.Contains(call, "/datacenter") {
			t.Errorf("undelivered service must not be queried further, got %s", call)
		}
	}
}

func TestFilerShow_StrictCompositeParse(t *testing.T) {
	env := newTestEnv(t)
	env.stubService("pcc-1", "delivered")

	for _, bad := range []string{"7", "42/7/1", "forty-two/7", "42/seven", "/7", "42/", "42/-7", "+1/7", "-42/7"} {
		resp := &spyResponder{}
		inv := invocation("hosted-private-cloud", "filer", "show", techCaller(), map[string]string{
			"service": "pcc-1",
			"filer":   bad,
		})
		env.dispatcher.Dispatch(context.Background(), inv, resp)

		out := resp.lastEdit(t)
		if out.Kind != render.KindError {
			t.Errorf("filer=%q: kind = %v, want error", bad, out.Kind)
		}
		for _, call := range env.transport.Calls() {
			if strings.Contains(call, "/filer/") {
				t.Errorf("filer=%q: malformed key must never reach the API, got %s", bad, call)
			}
		}
	}
}

func TestFilerShow_ValidCompositeFetchesFiler(t *testing.T) {
	env := newTestEnv(t)
	env.stubService("pcc-1", "delivered")
	env.transport.on("GET /dedicatedCloud/pcc-1/datacenter/42/filer/7",
		`{"filerId": 7, "name": "storage-7", "size": {"value": 3.0, "unit": "TB"}}`)
	resp := &spyResponder{}

	inv := invocation("hosted-private-cloud", "filer", "show", techCaller(), map[string]string{
		"service": "pcc-1",
		"filer":   "42/7",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindInfo {
		t.Errorf("kind = %v, want info", out.Kind)
	}
	if !strings.Contains(out.Description, "storage-7") {
		t.Errorf("filer view missing name:\n%s", out.Description)
	}
}

func TestInfrastructureShow_FlagsUndeliveredService(t *testing.T) {
	env := newTestEnv(t)
	env.stubService("pcc-1", "provisionning")
	resp := &spyResponder{}

	inv := invocation("hosted-private-cloud", "infrastructure", "show", techCaller(), map[string]string{"service": "pcc-1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindWarning {
		t.Errorf("kind = %v, want warning", out.Kind)
	}
}

func TestVMList_GroupsByClusterAndHost(t *testing.T) {
	env := newTestEnv(t)
	env.stubService("pcc-1", "delivered")
	env.transport.on("GET /dedicatedCloud/pcc-1/datacenter", `[42]`)
	env.transport.on("GET /dedicatedCloud/pcc-1/datacenter/42/vm", `[1, 2]`)
	env.transport.on("GET /dedicatedCloud/pcc-1/datacenter/42/vm/1",
		`{"vmId": 1, "name": "app-1", "clusterName": "Cluster1", "hostName": "esx-1"}`)
	env.transport.on("GET /dedicatedCloud/pcc-1/datacenter/42/vm/2",
		`{"vmId": 2, "name": "app-2", "clusterName": "Cluster1", "hostName": "esx-2"}`)
	resp := &spyResponder{}

	inv := invocation("hosted-private-cloud", "vm", "list", techCaller(), map[string]string{"service": "pcc-1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if len(out.Fields) != 1 || out.Fields[0].Name != "Cluster1" {
		t.Fatalf("fields = %+v, want one Cluster1 field", out.Fields)
	}
	for _, want := range []string{"esx-1", "esx-2", "app-1", "app-2"} {
		if !strings.Contains(out.Fields[0].Value, want) {
			t.Errorf("cluster field missing %q:\n%s", want, out.Fields[0].Value)
		}
	}
}
