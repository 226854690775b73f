package testsupport

// SampleRecordJSON is a complete codec-ladder record: identifiers, summary
// card fields, most pipeline stages, a ladder info field, a settings field and
// a few additional details.
const SampleRecordJSON = `{
  "vid": "v0200fg10000abc",
  "item_id": "7312345678901234567",
  "device_id": "",
  "user_id": "991",
  "priority_region": "US",
  "device_platform": "android",
  "client_version": "32.1.4",
  "video_duration": "15.25",
  "access_type": "wifi",
  "overall_score": 87.66,
  "ladders_before_filter_adaptive_video": ["h264_360p", "h264_540p", "h264_720p", "h265_720p", "h265_1080p"],
  "ladders_after_filter_adaptive_video": "[\"h264_360p\",\"h264_540p\",\"h264_720p\",\"h265_720p\"]",
  "ladders_after_filter_ladder_based_on_strategy_info": ["h264_540p", "h264_720p", "h265_720p"],
  "ladders_after_filter_video_play_qualities": ["h264_720p", "h265_720p"],
  "ladders_after_filter_irregular_bitrate_ladder": ["h265_720p"],
  "gear_ladder_info": {
    "h265_720p": {"status": 1, "bitrate": 1450, "universal_vmaf": 93.1},
    "h264_720p": {"status": "0", "reason": "bandwidth", "bitrate": 2100},
    "h264_540p": {"status": "0", "reason": "Bandwidth", "bitrate": 1200},
    "h264_360p": {"status": "0", "reason": "codec", "bitrate": 600}
  },
  "selector_settings": {"max_bitrate": 4000, "mode": "", "debug": null, "codecs": ["h264", "h265"]},
  "is_hdr": "0",
  "network_metrics": "{\"rtt\": 41, \"loss\": 0.01}",
  "notes": ""
}`

// SampleRecordCount is the number of records in SampleDatasetJSON.
const SampleRecordCount = 3

// SampleDatasetJSON wraps three small records in an array.
const SampleDatasetJSON = `[
  {"vid": "a1", "item_id": 1, "ladders_before_filter_adaptive_video": ["x", "y"], "ladders_after_filter_irregular_bitrate_ladder": ["x"]},
  {"vid": "b2", "item_id": 2, "ladders_before_filter_adaptive_video": ["x"]},
  {"vid": "c3", "item_id": 3}
]`
