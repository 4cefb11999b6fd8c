package kserve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"rental-price-service/internal/config"
	output "rental-price-service/internal/core/ports/output"
)

var inferenceServiceGVR = schema.GroupVersionResource{
	Group:    "serving.kserve.io",
	Version:  "v1beta1",
	Resource: "inferenceservices",
}

type kserveClient struct {
	client    dynamic.Interface
	enabled   bool
	defaultNS string
}

// NewKServeClient creates a KServe client adapter
func NewKServeClient(cfg *config.KubernetesConfig) (output.KServeClient, error) {
	if !cfg.Enabled {
		return &kserveClient{enabled: false}, nil
	}

	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return newWithDynamic(client, cfg.Namespace), nil
}

func newWithDynamic(client dynamic.Interface, defaultNS string) *kserveClient {
	if defaultNS == "" {
		defaultNS = "model-serving"
	}
	return &kserveClient{
		client:    client,
		enabled:   true,
		defaultNS: defaultNS,
	}
}

func (c *kserveClient) IsAvailable() bool {
	return c.enabled
}

func (c *kserveClient) GetStatus(ctx context.Context, namespace, name string) (*output.KServeStatus, error) {
	if !c.enabled {
		return nil, fmt.Errorf("kserve integration disabled")
	}
	if namespace == "" {
		namespace = c.defaultNS
	}

	obj, err := c.client.Resource(inferenceServiceGVR).
		Namespace(namespace).
		Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get kserve inferenceservice: %w", err)
	}

	return parseStatus(obj), nil
}

func parseStatus(obj *unstructured.Unstructured) *output.KServeStatus {
	status := &output.KServeStatus{}

	statusMap, found, _ := unstructured.NestedMap(obj.Object, "status")
	if !found {
		return status
	}

	status.URL, _, _ = unstructured.NestedString(statusMap, "url")

	conditions, found, _ := unstructured.NestedSlice(statusMap, "conditions")
	if !found {
		return status
	}
	for _, cond := range conditions {
		condMap, ok := cond.(map[string]interface{})
		if !ok {
			continue
		}
		if condType, _ := condMap["type"].(string); condType != "Ready" {
			continue
		}
		condStatus, _ := condMap["status"].(string)
		status.Ready = condStatus == "True"
		if condStatus == "False" {
			status.Error, _ = condMap["message"].(string)
		}
		break
	}

	return status
}

var _ output.KServeClient = (*kserveClient)(nil)
